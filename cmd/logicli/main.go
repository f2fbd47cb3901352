// Command logicli is a command-line front end for the goproof packages:
// parsing propositional and first-order formulas, printing truth tables,
// checking the soundness of inferences, and producing axiomatic proofs of
// tautologies.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/goproof/pkg/fol"
	"github.com/gitrdm/goproof/pkg/prop"
)

var (
	parseFirstOrder  bool
	checkAssumptions []string
	proveValidate    bool
)

var rootCmd = &cobra.Command{
	Use:   "logicli",
	Short: "Parse, evaluate, and prove formulas of propositional and first-order logic",
	Long: `logicli works with the fully parenthesized formula grammar:

  propositional: p, q76, T, F, ~p, (p&q), (p|q), (p->q), (p<->q), (p+q), (p-&q), (p-|q)
  first-order:   x=c, R(x,y), plus(x,y)=0, ~R(x), (R(x)&Q(y)), Ax[Ey[plus(x,y)=0]]

Examples:
  logicli parse "((p->q76)&~p)"
  logicli parse --first-order "Ax[Ey[plus(x,y)=0]]"
  logicli table "~(p&q76)"
  logicli check "q" --assume "p" --assume "(p->q)"
  logicli prove "(~~p->p)"`,
	SilenceUsage: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse FORMULA",
	Short: "Parse a formula and report its canonical form and symbols",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if parseFirstOrder {
			return runParseFirstOrder(args[0])
		}
		return runParse(args[0])
	},
}

var tableCmd = &cobra.Command{
	Use:   "table FORMULA",
	Short: "Print the truth table of a propositional formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := prop.Parse(args[0])
		if err != nil {
			return err
		}
		printColoredTable(f)
		classify(f)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check CONCLUSION --assume FORMULA ...",
	Short: "Check whether an inference is semantically sound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conclusion, err := prop.Parse(args[0])
		if err != nil {
			return err
		}
		assumptions := make([]prop.Formula, len(checkAssumptions))
		for i, s := range checkAssumptions {
			if assumptions[i], err = prop.Parse(s); err != nil {
				return err
			}
		}
		rule := prop.NewInferenceRule(assumptions, conclusion)
		if prop.IsSoundInference(rule) {
			color.Green("%s is sound", rule)
			return nil
		}
		color.Red("%s is not sound", rule)
		for _, m := range allRuleModels(rule) {
			if !prop.EvaluateInference(rule, m) {
				fmt.Printf("countermodel: %s\n", formatModel(m))
				break
			}
		}
		return nil
	},
}

var proveCmd = &cobra.Command{
	Use:   "prove FORMULA",
	Short: "Prove a tautology over '->' and '~' in the axiomatic system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := prop.Parse(args[0])
		if err != nil {
			return err
		}
		for op := range prop.Operators(f) {
			if op != "->" && op != "~" {
				return fmt.Errorf("the axiomatic prover handles only '->' and '~', got %q", op)
			}
		}
		proof, counterexample := prop.ProofOrCounterexample(f)
		if proof == nil {
			color.Red("%s is not a tautology", f)
			fmt.Printf("counterexample: %s\n", formatModel(counterexample))
			return nil
		}
		fmt.Print(proof)
		if proveValidate {
			if !proof.IsValid() {
				return fmt.Errorf("produced proof failed validation")
			}
			color.Green("proof is valid (%d lines)", len(proof.Lines))
		}
		return nil
	},
}

var skeletonCmd = &cobra.Command{
	Use:   "skeleton FORMULA",
	Short: "Print the propositional skeleton of a first-order formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFol(args[0])
		if err != nil {
			return err
		}
		skeleton, m := fol.PropositionalSkeleton(f, fol.NewFreshNameGenerator("z"))
		fmt.Printf("skeleton: %s\n", skeleton)
		var names []string
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s stands for %s\n", name, m[name])
		}
		return nil
	},
}

func runParse(s string) error {
	f, err := prop.Parse(s)
	if err != nil {
		return err
	}
	fmt.Printf("formula:   %s\n", f)
	fmt.Printf("variables: %s\n", strings.Join(sortedNames(prop.Variables(f)), ", "))
	fmt.Printf("operators: %s\n", strings.Join(sortedNames(prop.Operators(f)), ", "))
	return nil
}

// parseFol converts the first-order parser's panics on malformed input into
// errors fit for command output.
func parseFol(s string) (f fol.Formula, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return fol.Parse(s), nil
}

func runParseFirstOrder(s string) error {
	f, err := parseFol(s)
	if err != nil {
		return err
	}
	fmt.Printf("formula:        %s\n", f)
	fmt.Printf("free variables: %s\n", strings.Join(sortedNames(fol.FreeVariables(f)), ", "))
	fmt.Printf("constants:      %s\n", strings.Join(sortedNames(fol.Constants(f)), ", "))
	var relations []string
	for r := range fol.Relations(f) {
		relations = append(relations, fmt.Sprintf("%s/%d", r.Name, r.Arity))
	}
	sort.Strings(relations)
	fmt.Printf("relations:      %s\n", strings.Join(relations, ", "))
	return nil
}

// printColoredTable recolors the T and F cells of the plain table.
func printColoredTable(f prop.Formula) {
	green, red := color.New(color.FgGreen), color.New(color.FgRed)
	for _, line := range strings.Split(prop.FormatTruthTable(f), "\n") {
		for _, cell := range strings.SplitAfter(line, "|") {
			switch {
			case strings.Contains(cell, "T"):
				green.Print(cell)
			case strings.Contains(cell, "F"):
				red.Print(cell)
			default:
				fmt.Print(cell)
			}
		}
		fmt.Println()
	}
}

func classify(f prop.Formula) {
	switch {
	case prop.IsTautology(f):
		color.Green("%s is a tautology", f)
	case prop.IsContradiction(f):
		color.Red("%s is a contradiction", f)
	default:
		fmt.Printf("%s is satisfiable but not a tautology\n", f)
	}
}

func allRuleModels(rule prop.InferenceRule) []prop.Model {
	return prop.AllModels(sortedNames(rule.Variables()))
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatModel(m prop.Model) string {
	parts := make([]string, 0, len(m))
	for _, name := range sortedNames(modelVariables(m)) {
		value := "F"
		if m[name] {
			value = "T"
		}
		parts = append(parts, name+"="+value)
	}
	return strings.Join(parts, " ")
}

func modelVariables(m prop.Model) map[string]bool {
	names := make(map[string]bool, len(m))
	for name := range m {
		names[name] = true
	}
	return names
}

func main() {
	parseCmd.Flags().BoolVar(&parseFirstOrder, "first-order", false,
		"parse with the first-order grammar")
	checkCmd.Flags().StringArrayVar(&checkAssumptions, "assume", nil,
		"assumption formula (repeatable)")
	proveCmd.Flags().BoolVar(&proveValidate, "validate", true,
		"run the proof checker on the produced proof")
	rootCmd.AddCommand(parseCmd, tableCmd, checkCmd, proveCmd, skeletonCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
