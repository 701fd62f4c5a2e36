// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

// ItemConverter maps master list elements to target list elements and back.
//
// The two directions need not be exact inverses, but converting forward and
// then back must be stable, otherwise repeated synchronization never settles.
type ItemConverter[M, T any] interface {
	Convert(masterItem M) (T, error)
	ConvertBack(targetItem T) (M, error)
}

type identityConverter[T any] struct{}

func (identityConverter[T]) Convert(v T) (T, error)     { return v, nil }
func (identityConverter[T]) ConvertBack(v T) (T, error) { return v, nil }

// Identity returns the converter that passes elements through unchanged.
// It holds no state; every call returns an equal zero-sized value.
func Identity[T any]() ItemConverter[T, T] {
	return identityConverter[T]{}
}

// ConverterFuncs adapts a pair of functions to [ItemConverter].
type ConverterFuncs[M, T any] struct {
	Forward  func(M) (T, error)
	Backward func(T) (M, error)
}

func (c ConverterFuncs[M, T]) Convert(v M) (T, error) {
	return c.Forward(v)
}

func (c ConverterFuncs[M, T]) ConvertBack(v T) (M, error) {
	return c.Backward(v)
}
