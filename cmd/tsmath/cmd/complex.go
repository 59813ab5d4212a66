package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tsmath/mathx"
)

var (
	flagRe  float64
	flagIm  float64
	flagRe2 float64
	flagIm2 float64
)

var complexCmd = &cobra.Command{
	Use:   "complex",
	Short: "Arithmetik mit komplexen Zahlen",
	Long: `Führt Feldoperationen auf komplexen Zahlen aus.

Die Operanden werden über die Flags --re/--im (erster Operand) und
--re2/--im2 (zweiter Operand) als Gleitkommazahlen übergeben.`,
}

var complexAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Addiert zwei komplexe Zahlen",
	Run: func(cmd *cobra.Command, args []string) {
		a, b := operands()
		printBinary("+", a, b, a.Add(b))
	},
}

var complexSubCmd = &cobra.Command{
	Use:   "sub",
	Short: "Subtrahiert zwei komplexe Zahlen",
	Run: func(cmd *cobra.Command, args []string) {
		a, b := operands()
		printBinary("-", a, b, a.Subtract(b))
	},
}

var complexMulCmd = &cobra.Command{
	Use:   "mul",
	Short: "Multipliziert zwei komplexe Zahlen",
	Run: func(cmd *cobra.Command, args []string) {
		a, b := operands()
		printBinary("*", a, b, a.Multiply(b))
	},
}

var complexDivCmd = &cobra.Command{
	Use:   "div",
	Short: "Dividiert zwei komplexe Zahlen",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := operands()
		quotient, err := a.Divide(b)
		if err != nil {
			printError("Division fehlgeschlagen", err)
			return err
		}
		printBinary("/", a, b, quotient)
		return nil
	},
}

var complexSqrtCmd = &cobra.Command{
	Use:   "sqrt",
	Short: "Berechnet die Hauptwurzel einer komplexen Zahl",
	Run: func(cmd *cobra.Command, args []string) {
		a := mathx.NewComplex(flagRe, flagIm)
		fmt.Printf("sqrt(%s) = %s\n", a.String(), renderResult(a.Sqrt().String()))
	},
}

var complexAbsCmd = &cobra.Command{
	Use:   "abs",
	Short: "Berechnet den Betrag einer komplexen Zahl",
	Run: func(cmd *cobra.Command, args []string) {
		a := mathx.NewComplex(flagRe, flagIm)
		fmt.Printf("|%s| = %s\n", a.String(), renderResult(fmt.Sprintf("%g", a.Abs())))
	},
}

var complexConjCmd = &cobra.Command{
	Use:   "conj",
	Short: "Berechnet die konjugiert komplexe Zahl",
	Run: func(cmd *cobra.Command, args []string) {
		a := mathx.NewComplex(flagRe, flagIm)
		fmt.Printf("conj(%s) = %s\n", a.String(), renderResult(a.Conjugate().String()))
	},
}

var complexCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Vergleicht zwei komplexe Zahlen nach Betrag",
	Run: func(cmd *cobra.Command, args []string) {
		a, b := operands()
		fmt.Printf("compare(%s, %s) = %s %s\n",
			a.String(), b.String(),
			renderResult(fmt.Sprintf("%d", a.Compare(b))),
			renderMuted("(Vergleich nur nach Betrag)"))
	},
}

func init() {
	complexCmd.PersistentFlags().Float64Var(&flagRe, "re", 0, "Realteil des ersten Operanden")
	complexCmd.PersistentFlags().Float64Var(&flagIm, "im", 0, "Imaginärteil des ersten Operanden")
	complexCmd.PersistentFlags().Float64Var(&flagRe2, "re2", 0, "Realteil des zweiten Operanden")
	complexCmd.PersistentFlags().Float64Var(&flagIm2, "im2", 0, "Imaginärteil des zweiten Operanden")

	complexCmd.AddCommand(complexAddCmd)
	complexCmd.AddCommand(complexSubCmd)
	complexCmd.AddCommand(complexMulCmd)
	complexCmd.AddCommand(complexDivCmd)
	complexCmd.AddCommand(complexSqrtCmd)
	complexCmd.AddCommand(complexAbsCmd)
	complexCmd.AddCommand(complexConjCmd)
	complexCmd.AddCommand(complexCompareCmd)
	rootCmd.AddCommand(complexCmd)
}

func operands() (mathx.Complex, mathx.Complex) {
	return mathx.NewComplex(flagRe, flagIm), mathx.NewComplex(flagRe2, flagIm2)
}

func printBinary(op string, a, b, result mathx.Complex) {
	fmt.Printf("(%s) %s (%s) = %s\n", a.String(), op, b.String(), renderResult(result.String()))
}
