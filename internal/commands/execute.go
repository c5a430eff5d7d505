package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Done     func(DoneArgs) (Result, error)
	Delete   func(DeleteArgs) (Result, error)
	Filter   func(FilterArgs) (Result, error)
	Login    func(LoginArgs) (Result, error)
	Register func(RegisterArgs) (Result, error)
	Logout   func() (Result, error)
	Export   func() (Result, error)
	Clear    func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing("done")
		}
		return handlers.Done(*cmd.Done)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing("delete")
		}
		return handlers.Delete(*cmd.Delete)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, missing("filter")
		}
		return handlers.Filter(*cmd.Filter)
	case TypeLogin:
		if handlers.Login == nil {
			return Result{}, missing("login")
		}
		return handlers.Login(*cmd.Login)
	case TypeRegister:
		if handlers.Register == nil {
			return Result{}, missing("register")
		}
		return handlers.Register(*cmd.Register)
	case TypeLogout:
		if handlers.Logout == nil {
			return Result{}, missing("logout")
		}
		return handlers.Logout()
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missing("export")
		}
		return handlers.Export()
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing("clear")
		}
		return handlers.Clear()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}
