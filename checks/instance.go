package checks

import (
	"fmt"
	"reflect"
)

// InstanceOf verifies that v's dynamic type is assignable to T and returns v
// narrowed to T. It is the only check with a result besides the error. When
// no option is supplied the error message is
// "Argument is not an instance of {type name}".
//
// Example:
//
//	closer, err := checks.InstanceOf[io.Closer](conn)
//	if err != nil {
//		return err
//	}
//	defer closer.Close()
func InstanceOf[T any](v any, opts ...Option) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T

	if len(opts) == 0 {
		return zero, &CheckError{
			Kind:    ErrInvalidArgument,
			Message: fmt.Sprintf("Argument is not an instance of %s", typeName[T]()),
		}
	}

	return zero, fail(ErrInvalidArgument, opts)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
