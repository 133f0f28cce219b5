package scaffold

import (
	"errors"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
)

func (p *Pipeline) reportName(appName string, err error) {
	var e *errs.Error
	if !errors.As(err, &e) {
		p.out.Error(err.Error())
		return
	}

	switch e.Kind {
	case errs.InvalidName:
		p.out.Println("Could not create a project called " + output.Red(`"`+appName+`"`) + " because of npm naming restrictions:")
		for _, detail := range e.Details {
			p.out.Error("  *  " + detail)
		}
	case errs.ReservedName:
		p.out.Error("We cannot create a project called " + output.Green(appName) + " because a dependency with the same name exists.")
		p.out.Error("Due to the way npm works, the following names are not allowed:")
		p.out.Blank()
		for _, name := range e.Details {
			p.out.Println("  " + output.Cyan(name))
		}
		p.out.Blank()
		p.out.Error("Please choose a different project name.")
	default:
		p.out.Error(err.Error())
	}
}
