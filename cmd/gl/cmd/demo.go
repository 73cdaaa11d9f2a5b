package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/goinglogging/gl"
)

// intStack is a stack of ints for the front-only demo; last element is top
type intStack []int

func (s intStack) Len() int {
	return len(s)
}

func (s intStack) Top() int {
	return s[len(s)-1]
}

// intQueue is a queue of ints for the front-only demo; first element is front
type intQueue []int

func (q intQueue) Len() int {
	return len(q)
}

func (q intQueue) Front() int {
	return q[0]
}

func (q intQueue) Back() int {
	return q[len(q)-1]
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print sample output for every value shape",
	Run: func(cmd *cobra.Command, args []string) {
		// Scalars
		i := 1
		f := 2.5
		b := true
		s := "text"
		gl.Log(gl.P("i", i), gl.P("f", f), gl.P("b", b), gl.P("s", s))
		gl.Log(gl.P("c", gl.Char('x')))

		// Sequences
		xs := []int{0, 1, 2}
		gl.Log(gl.P("xs", gl.Slice(xs)))
		gl.Log(gl.P("empty", gl.Slice([]int{})))
		gl.Log(gl.P("nested", gl.Slice([]gl.Value{
			gl.Slice([]int{1, 2}),
			gl.Slice([]int{3}),
		})))

		// Maps
		gl.Log(gl.P("m", gl.Entries([]gl.Entry[string, int]{
			gl.E("a", 1),
			gl.E("b", 2),
		})))

		// Front-only structures
		st := intStack{1, 2, 3}
		q := intQueue{1, 2, 3}
		gl.Log(gl.P("st", gl.Stack[int](st)), gl.P("q", gl.Queue[int](q)))

		// Array and matrix
		a := []int{10, 20, 30}
		gl.LogArray("a", a, len(a))

		m := [][]int{{11, 12}, {21, 22}}
		gl.LogMatrix("m", m, 2, 2)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
