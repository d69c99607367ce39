// Package main provides a small CLI for inspecting iteration plans.
package main

import (
	"fmt"
	"os"

	"github.com/qingzengsong/pytorch/iter"
	"github.com/qingzengsong/pytorch/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("pytorch-go %s\n", version)
		return
	}

	// Demo: plan a broadcast add of a (3, 1) column against a (4,) row and
	// print what the planner resolved.
	col, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, tensor.CPU)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	row, err := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.Shape{4}, tensor.CPU)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	it, err := iter.BinaryOp(nil, col, row)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("unified shape: %v (%d elements)\n", it.Shape(), it.NumElements())
	for i := 0; i < it.NumOperands(); i++ {
		role := "input"
		if i < it.NumOutputs() {
			role = "output"
		}
		fmt.Printf("operand %d (%s): dtype=%s device=%s strides=%v\n",
			i, role, it.DType(i), it.Device(i), it.Strides(i))
	}

	if err := iter.SerialBinary(it, func(a, b float32) float32 { return a + b }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("result: %v\n", tensor.Slice[float32](it.Output()))
}
