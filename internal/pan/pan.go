// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pan

import (
	"import.name/pan"
)

var z = new(pan.Zone)

var Panic = z.Panic

func Error(x any) error {
	return z.Error(x)
}
