package core

import (
	"fmt"
	"reflect"
)

// IgnoreFields builds the projection a mock uses to compare calls when some
// parameters are flagged ignored. P is the full parameter struct; the named
// fields are dropped and the rest are kept in declaration order. Q is the
// reduced shape the projection produces, and must follow the same rules the
// generated glue uses for parameter shapes:
//
//   - every field ignored: Q is struct{}
//   - exactly one field kept: Q is that field's bare type, not a one-field struct
//   - otherwise: Q is a struct with the kept fields, same names and types, in order
//
// The kept-field index set is computed once, here; the returned projection is
// pure and is applied identically to every stored call and every assertion
// argument, so the two sides of a comparison are always structurally
// compatible.
//
// Shape mistakes - a non-struct P, an ignored name that doesn't exist, an
// unexported kept field, a Q that doesn't line up - panic immediately. Those
// are bugs in the glue, not test failures.
func IgnoreFields[P, Q any](ignored ...string) func(P) Q {
	pType := reflect.TypeFor[P]()
	qType := reflect.TypeFor[Q]()

	if pType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("fnmock: IgnoreFields needs a struct parameter shape, got %s", pType))
	}

	ignoredSet := make(map[string]bool, len(ignored))

	for _, name := range ignored {
		if _, ok := pType.FieldByName(name); !ok {
			panic(fmt.Sprintf("fnmock: ignored parameter %q does not exist on %s", name, pType))
		}

		ignoredSet[name] = true
	}

	kept := []int{}

	for i := range pType.NumField() {
		field := pType.Field(i)
		if ignoredSet[field.Name] {
			continue
		}

		if field.PkgPath != "" {
			panic(fmt.Sprintf("fnmock: parameter field %s.%s must be exported", pType, field.Name))
		}

		kept = append(kept, i)
	}

	switch len(kept) {
	case 0:
		return projectToUnit[P, Q](pType, qType)
	case 1:
		return projectToBare[P, Q](pType, qType, kept[0])
	default:
		return projectToStruct[P, Q](pType, qType, kept)
	}
}

func projectToUnit[P, Q any](pType, qType reflect.Type) func(P) Q {
	if qType != reflect.TypeFor[struct{}]() {
		panic(fmt.Sprintf(
			"fnmock: every parameter of %s is ignored, so the reduced shape must be struct{}, got %s",
			pType, qType))
	}

	return func(P) Q {
		var unit Q

		return unit
	}
}

func projectToBare[P, Q any](pType, qType reflect.Type, index int) func(P) Q {
	field := pType.Field(index)
	if field.Type != qType {
		panic(fmt.Sprintf(
			"fnmock: single kept parameter %s.%s projects to its bare type %s, got %s",
			pType, field.Name, field.Type, qType))
	}

	return func(p P) Q {
		//nolint:forcetypeassert // construction-time validation guarantees the type
		return reflect.ValueOf(p).Field(index).Interface().(Q)
	}
}

func projectToStruct[P, Q any](pType, qType reflect.Type, kept []int) func(P) Q {
	if qType.Kind() != reflect.Struct || qType.NumField() != len(kept) {
		panic(fmt.Sprintf(
			"fnmock: reduced shape %s must be a struct with the %d kept fields of %s",
			qType, len(kept), pType))
	}

	for j, i := range kept {
		pField, qField := pType.Field(i), qType.Field(j)
		if pField.Name != qField.Name || pField.Type != qField.Type {
			panic(fmt.Sprintf(
				"fnmock: reduced shape %s field %d must be %s %s, got %s %s",
				qType, j, pField.Name, pField.Type, qField.Name, qField.Type))
		}
	}

	return func(p P) Q {
		pVal := reflect.ValueOf(p)
		qVal := reflect.New(qType).Elem()

		for j, i := range kept {
			qVal.Field(j).Set(pVal.Field(i))
		}

		//nolint:forcetypeassert // qVal was built as Q
		return qVal.Interface().(Q)
	}
}
