// Package matrixio encodes and decodes matrices as self-describing documents.
//
// A document carries the shape and a flat row-major cell list in which a
// null entry marks an absent cell:
//
//	{"rows": 2, "cols": 2, "cells": [1, 2, 3, null]}
//
// Two wire formats share that layout: JSON and MessagePack, both through
// github.com/ugorji/go/codec. Decoding re-validates the shape and the cell
// count, so a decoded matrix obeys the same rules as one built with
// matrix.New.
package matrixio
