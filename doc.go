// Package ntt2x2 implements a software model of a 2x2 radix-4 Number
// Theoretic Transform (NTT) datapath for the polynomial ring
// R_q = Z_q[x]/(x^N+1), N = 256, q = 8380417 — the ring used by the
// Dilithium lattice signature scheme.
//
// The package models a streaming hardware pipeline rather than a plain
// recursive transform: coefficients are read four at a time from a banked
// memory, pushed through a network of unequal-depth shift registers that
// realign data between two stacked butterfly stages, and written back once
// the pipeline has filled. Forward NTT, inverse NTT and pointwise
// multiplication share the same Butterfly2x2 circuit under different
// Modes.
//
// Basic usage:
//
//	ram := ntt2x2.Reshape(poly)
//	ntt2x2.Fwdntt(ram, ntt2x2.Natural)
//	// ram now holds poly's NTT image, laid out under ntt2x2.AfterNTT
//	ntt2x2.Invntt(ram, ntt2x2.AfterNTT)
//	// ram now holds poly again, laid out under ntt2x2.Natural
//	back := ntt2x2.Flatten(ram)
//
// Structured debug logging and Prometheus metrics are opt-in: install them
// with SetDebugLogger and SetMetrics. Neither is touched by default, so the
// core stays silent and allocation-free outside of its own BankedRAM/FIFOs.
package ntt2x2
