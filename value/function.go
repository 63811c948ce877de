package value

type Func func(args []Value) (Value, error)

type Function struct {
	name string
	call Func
}

func NewFunction(name string, fn Func) Function {
	return Function{
		name: name,
		call: fn,
	}
}

func (Function) Type() string {
	return "function"
}

func (Function) Kind() ValueKind {
	return KindFunction
}

func (f Function) String() string {
	return f.name
}

func (f Function) Call(args []Value) (Value, error) {
	return f.call(args)
}
