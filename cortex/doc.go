// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cortex generates a biologically based cortical microcircuit
network: populations of neurons organized by cortical depth and cell
class, individual cells distributed round-robin across compute
partitions, and probabilistic distance- and depth-dependent synaptic
connectivity between them.

Everything random is reseeded from a deterministic hash of stable keys
(the global random seed for cell generation; seed + postsynaptic gid
for connectivity), so for a fixed configuration the generated network
is bit-identical regardless of partition count or execution order.
That is what allows partitions to build their shares fully
independently, with no locking and no message passing: each partition
recomputes the identical candidate sequences and materializes only the
cells that the round-robin ownership rule assigns to it.

The actual cell dynamics and cross-partition spike exchange live behind
the Engine capability interface and are not part of this package; the
izhi package provides a minimal in-repo implementation.
*/
package cortex
