// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training modules.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewPolynomial(backend, rand.New(rand.NewSource(42)))
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05, Momentum: 0.9}, backend)
//	mse := nn.NewMSELoss(backend)
//
//	tape := backend.Tape()
//	tape.StartRecording()
//	for epoch := 0; epoch < 300; epoch++ {
//	    tape.Clear()
//	    loss := mse.Forward(model.Forward(x), y)
//	    grads, err := autodiff.Backward(loss, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
//
// Optimizers write parameter data in place, so updates are never recorded
// on the tape.
package optim
