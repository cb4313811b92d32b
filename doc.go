// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package netpyne is the overall repository for the cortical microcircuit
network generator implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* labels: the fixed symbolic labels of the model as dense integer enums:
synaptic receptors, excitatory vs. inhibitory class, cell top-level and
sub-class, and cell model kinds.  The enum sizes are the dimensions of
the connectivity tables.

* cortex: the generation core: populations with depth-dependent
densities, deterministic distributed cell generation, and the
probabilistic distance- and depth-dependent connectivity engine.  All
randomness is reseeded from hashed keys, so the generated network is
identical for any number of compute partitions.

* izhi: Izhikevich 2007 point-process units in the RS, FS and LTS
parameterizations, plus a minimal simulation engine with synaptic
conductance channels, Poisson background drive and STDP.

* examples/m1micro: compiles into a runnable program that generates the
default M1 microcircuit, optionally under MPI, and writes the cell and
connection tables.
*/
package netpyne
