// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borelpade/pade"
)

var qedArgs = []string{"--", "0.5", "-0.328478965", "1.181241456", "-1.912245764", "6.8"}

func runCmd(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Estimate(t *testing.T) {
	code, out, _ := runCmd(qedArgs...)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "order    [2/2]")
	assert.Contains(t, out, "c_6      -20.8812634")

	code, out, _ = runCmd(append([]string{"--sign=-1", "--solver", "gonum"}, qedArgs...)...)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "c_6      20.8812634")
}

func TestRun_BorelSum(t *testing.T) {
	code, out, _ := runCmd("--order", "0/1", "--borel", "1", "--", "1", "-2", "6", "-24")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "c_5      120")
	assert.Contains(t, out, "0.403652638")
}

func TestRun_Scenarios(t *testing.T) {
	code, out, _ := runCmd("--scenarios", "default")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Aoyama 2025")
	assert.Contains(t, out, "-20.8813")

	path := filepath.Join("..", "..", "scenario", "testdata", "degenerate.yaml")
	code, out, errOut := runCmd("--scenarios", path)
	assert.Equal(t, 1, code, "every scenario failed")
	assert.Contains(t, out, "ill-conditioned")
	assert.Contains(t, errOut, "all 2 scenarios failed")
}

func TestRun_Verbose(t *testing.T) {
	code, _, errOut := runCmd(append([]string{"-v"}, qedArgs...)...)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=debug")
}

func TestRun_BadArguments(t *testing.T) {
	cases := map[string][]string{
		"no coefficients": {},
		"bad order":       append([]string{"--order", "2"}, qedArgs...),
		"zero M":          append([]string{"--order", "2/0"}, qedArgs...),
		"bad solver":      append([]string{"--solver", "qr"}, qedArgs...),
		"bad sign":        append([]string{"--sign", "2"}, qedArgs...),
		"negative eps":    append([]string{"--eps=-1"}, qedArgs...),
		"not a number":    {"--", "0.5", "x"},
		"too short":       {"--", "1", "2", "3"},
		"singular":        {"--", "1", "4", "12", "48", "600"},
		"missing table":   {"--scenarios", "does-not-exist.yaml"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, _, errOut := runCmd(args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "level=error")
		})
	}

	code, _, _ := runCmd("--help")
	assert.Equal(t, 0, code)
}

func TestParseOrder(t *testing.T) {
	ord, err := parseOrder(" 3 / 2 ")
	require.NoError(t, err)
	assert.Equal(t, pade.Order{L: 3, M: 2}, ord)

	_, err = parseOrder("a/2")
	assert.Error(t, err)
	_, err = parseOrder("-1/2")
	assert.ErrorIs(t, err, pade.ErrBadOrder)
}
