// Package main provides a small CLI around the postop pipeline: it parses a
// chain, applies it to the given values and prints the results.
//
// Usage:
//
//	postop -postops fp32_gelu+quantize -dtype u8 -1.5 0 2 7
//	postop version
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/born-ml/postop/postop"
	"github.com/born-ml/postop/tensor"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("postop: ")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("postop %s\n", version)
		return
	}

	if err := run(os.Args[1:], os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("postop", flag.ContinueOnError)
	chain := fs.String("postops", "", "postop chain, e.g. fp32_gelu+quantize+bf16_exp")
	dtypeName := fs.String("dtype", "", "output data type (fp32, bf16, u8); defaults to the chain's last data type")
	dump := fs.Bool("dump", false, "hex-dump the encoded output buffer")
	quiet := fs.Bool("q", false, "do not report skipped chain segments")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := postop.Parse(*chain)
	if !*quiet {
		for _, w := range res.Warnings {
			logger.Printf("warning: %v", w)
		}
	}

	dtype, err := outputType(*dtypeName, res.DataType)
	if err != nil {
		return err
	}

	values := make([]float32, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = float32(v)
	}

	fmt.Fprintf(out, "chain: %q (%d ops, dtype %s)\n", postop.Format(res.Ops), len(res.Ops), dtype)
	if len(values) == 0 {
		return nil
	}

	dst, err := tensor.NewRaw(tensor.TensorDesc{Dims: tensor.Shape{len(values)}, DType: dtype})
	if err != nil {
		return err
	}
	if err := postop.ApplyTo(dst, values, res.Ops); err != nil {
		return err
	}

	for i, v := range values {
		got, err := dst.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g -> %g\n", v, got)
	}
	if *dump {
		fmt.Fprint(out, hex.Dump(dst.Bytes()))
	}
	return nil
}

// outputType picks the -dtype flag when set, else the chain's data type,
// else fp32.
func outputType(name string, chain tensor.DataType) (tensor.DataType, error) {
	if name != "" {
		return tensor.ParseDataType(name)
	}
	if chain == tensor.Undef {
		return tensor.Fp32, nil
	}
	return chain, nil
}
