// Package cim finds neighbors among circular particles on a square plane
// using the cell index method.
//
// The plane of side L is split into an M x M grid of cells of side L/M.
// Each particle center is assigned to one cell, and candidate pairs are drawn
// only from the same cell and four adjacent cells (up, up-right, right,
// down-right), so every unordered cell pair is visited once. Correctness
// requires L/M >= rc + 2*rmax, where rc is the interaction radius and rmax the
// largest particle radius.
//
// Two particles are neighbors when the distance between their borders is at
// most rc. With periodic boundaries the grid wraps and distances use the
// minimum image.
//
//	plane, _ := cim.NewPlane(20, particles)
//	m, _ := cim.New(plane, 1.0, cim.WithPeriodic(true))
//	neighbors, _ := m.Execute(ctx)
//
// [BruteForce] checks every pair and serves as a reference.
package cim
