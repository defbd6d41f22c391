// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides modules, parameters and losses.
//
// # Overview
//
// This package contains:
//   - Module: the interface every model implements
//   - Parameter: a named trainable tensor with its gradient
//   - Polynomial: a module computing a*x^2 + b*x + c with learnable a, b, c
//   - MSELoss: mean squared error
//   - Normal, Constant: parameter initialization
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewPolynomial(backend, rand.New(rand.NewSource(42)))
//	loss := nn.NewMSELoss(backend).Forward(model.Forward(x), y)
//
// Modules are generic over the backend, so the same model runs with or
// without a gradient tape.
package nn
