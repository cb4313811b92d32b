// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
	"strconv"
)

// id32 hashes the given string down to a 32-bit value (the leading 4
// bytes of its md5 digest).  It is the sole source of random seeds in
// network generation: the same key yields the same seed on every
// platform and every partition, which is what makes generation
// invariant to partition count and execution order.
func id32(key string) uint32 {
	sum := md5.Sum([]byte(key))
	return binary.BigEndian.Uint32(sum[:4])
}

// SeedRand returns a fresh generator reseeded from the hash of the
// given integer key.  Each generation step owns its generator; nothing
// in this package touches the global rand state.  Simulation engines
// use it too, so that runs are reproducible end to end from one seed.
func SeedRand(key int) *rand.Rand {
	return rand.New(rand.NewSource(int64(id32(strconv.Itoa(key)))))
}
