// Package generators builds and writes the model, serializer, admin, view-set
// and route artifacts for one resource of an app.
//
// Overview:
//   - Responsibility: Render per-artifact head/body fragments and merge them into app files
//   - Key Types: ResourceSpec, Generator, Patcher, Route
//   - Concurrency Model: Sequential generation, one file patched at a time
//   - Error Semantics: Field errors abort before any write; no rollback of earlier steps
//   - Performance Notes: Template-based generation, unchanged files are not rewritten
//
// Usage:
//
//	gen, err := generators.NewGenerator(generators.ResourceSpec{
//	    AppName:   "blog",
//	    ModelName: "Article",
//	    Fields:    []string{"title:charfield", "body:textfield"},
//	})
//	err = gen.Run()
package generators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/fields"
	"go.eggybyte.com/drscaffold/internal/projectfs"
)

// ResourceSpec describes the resource to scaffold.
//
// Parameters:
//   - AppName: App directory and Python package name (e.g., "blog")
//   - ModelName: Model class name (e.g., "Article")
//   - Fields: Raw "name:type" tokens in declaration order
//
// Concurrency:
//
//	Treated as immutable once passed to NewGenerator.
type ResourceSpec struct {
	AppName   string   `validate:"required,identifier"`
	ModelName string   `validate:"required,identifier"`
	Fields    []string `validate:"dive,required"`
}

// Patcher is the file patch API the generator writes through.
// *projectfs.ProjectFS satisfies it.
type Patcher interface {
	CreateDirectory(path string) error
	EnsureFile(path string) (bool, error)
	ReadFile(path string) (string, error)
	AddSetupImports(paths, snippets []string) error
	AppendOnce(path, snippet string) (projectfs.PatchResult, error)
	ReplaceFileChunk(path string, region projectfs.Region, content string) (projectfs.PatchResult, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return fields.IsIdentifier(fl.Field().String())
	})
	return v
}

// Validate checks the spec's names. Field tokens are checked separately by
// the field parser.
func (s ResourceSpec) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(errors.CodeInternal, "generators.Validate", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "identifier":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a valid Python identifier", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(errors.CodeInvalidArgument, strings.Join(msgs, "; "))
}
