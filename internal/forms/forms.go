// Package forms parses and validates the urlencoded bodies posted by the create and edit
// pages.
package forms

import (
	"errors"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/db"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := genreSet[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		_, ok := stateSet[fl.Field().String()]
		return ok
	})
	return v
}

// check runs the struct validator and reports failures as a *db.ValidationError.
func check(entity string, form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return invalid(entity, fieldNames(verrs)...)
}

func fieldNames(verrs validator.ValidationErrors) []string {
	var names []string
	for _, fe := range verrs {
		name := fe.Field()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		names = append(names, name)
	}
	return names
}

func invalid(entity string, fields ...string) error {
	seen := make(map[string]struct{}, len(fields))
	var uniq []string
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		uniq = append(uniq, f)
	}
	sort.Strings(uniq)
	return &db.ValidationError{Entity: entity, Fields: uniq}
}

func fieldsOf(err error) []string {
	var verr *db.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

func parse(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return invalid("form", "body")
	}
	return nil
}

func text(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

func list(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.PostForm[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// checkbox treats the values browsers and WTForms-style forms post for a ticked box as true.
func checkbox(r *http.Request, key string) bool {
	switch strings.ToLower(text(r, key)) {
	case "y", "on", "true", "yes", "1":
		return true
	}
	return false
}
