/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import "errors"

// ErrInvalid is the uniform rejection for any component value a parser
// cannot accept. Parse failures carry no payload; callers decide whether
// to discard the surrounding declaration.
var ErrInvalid = errors.New("invalid component value")
