package frame

import "fmt"

// DF is the interface a data frame implementation satisfies.
type DF interface {
	AppendColumn(col Column, replace bool) error
	Column(colName string) Column
	ColumnCount() int
	ColumnNames() []string
	RowCount() int
	Sort(ascending bool, keys ...string) error
	String() string
}

// *********** Functions ***********

// Fn is a function that can be run against the columns of a DF. When info is true it
// returns only its signature in FnReturn.
type Fn func(info bool, context *Context, inputs ...any) *FnReturn

type Fns []Fn

type FnReturn struct {
	Value any

	Name   string
	Inputs [][]DataTypes
	Output []DataTypes

	Err error
}

func (fs Fns) Get(fnName string) Fn {
	for _, f := range fs {
		if f(true, nil).Name == fnName {
			return f
		}
	}

	return nil
}

// Check returns an error if inputs do not match one of fn's signatures.
func (fr *FnReturn) Check(inputs ...Column) error {
	for _, sig := range fr.Inputs {
		if len(sig) != len(inputs) {
			continue
		}

		ok := true
		for ind, dt := range sig {
			if dt != DTany && dt != inputs[ind].DataType() {
				ok = false
				break
			}
		}

		if ok {
			return nil
		}
	}

	return fmt.Errorf("no signature of %s matches inputs", fr.Name)
}

// *********** Context ***********

type Context struct {
	self DF
}

func NewContext(df DF) *Context {
	return &Context{self: df}
}

func (c *Context) Self() DF {
	return c.self
}
