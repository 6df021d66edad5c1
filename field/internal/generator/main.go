package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-fore")

	specs := []extensionSpecs{
		{Name: "gfp2", Modulus: 1<<31 - 1, Discriminant: 5},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for extension \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../../pkg/field/%s/constants.go", spec.Name),
				Templates: []string{"constants.go.tmpl"},
			},
		), "for extension \"%s\"", spec.Name)
	}
	// run gofmt on the generated package
	runCmd("gofmt", "-w", "../../../pkg/field/")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// extensionSpecs describes a quadratic extension GF(p)[x]/(x² - x - 1) over a
// prime field of order less than 2³².
type extensionSpecs struct {
	Name         string
	Modulus      uint32
	Discriminant uint32
}

type extensionConfig struct {
	extensionSpecs
	GroupOrder    uint64
	EulerExponent uint64
	PhiA          uint32
	PhiB          uint32
}

func (f extensionSpecs) config() (*extensionConfig, error) {
	var (
		m     = new(big.Int).SetUint64(uint64(f.Modulus))
		one   = big.NewInt(1)
		order big.Int
		euler big.Int
		check big.Int
	)

	if !m.ProbablyPrime(20) {
		return nil, fmt.Errorf("modulus %d is not prime", f.Modulus)
	}
	// p² - 1
	order.Mul(m, m).Sub(&order, one)

	if !order.IsUint64() {
		return nil, fmt.Errorf("group order %s exceeds 64 bits", order.String())
	}
	// (p - 1) / 2
	euler.Sub(m, one).Rsh(&euler, 1)
	// Euler's criterion: the discriminant must be a non-residue for the
	// extension polynomial to be irreducible.
	check.SetUint64(uint64(f.Discriminant)).Exp(&check, &euler, m)

	if check.Cmp(new(big.Int).Sub(m, one)) != 0 {
		return nil, fmt.Errorf("discriminant %d is a square modulo %d", f.Discriminant, f.Modulus)
	}

	return &extensionConfig{
		extensionSpecs: f,
		GroupOrder:     order.Uint64(),
		EulerExponent:  euler.Uint64(),
		PhiA:           0,
		PhiB:           1,
	}, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
