package overload

import (
	"fmt"
	"reflect"

	"github.com/ib-77/opt3/pkg/opt"
)

var presenceType = reflect.TypeOf((*opt.Presence)(nil)).Elem()

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// checkCallable validates a candidate's shape when it is registered, so a
// malformed callable fails while the set is being composed, never when a
// call is dispatched. optionalResult additionally requires the first
// result to be an Optional (checked through the opt.Presence marker) for
// bind-style sets.
func checkCallable(fn any, optionalResult bool) (reflect.Value, error) {
	if IsNil(fn) {
		return reflect.Value{}, ErrNotCallable
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: got %s", ErrNotCallable, v.Kind())
	}

	t := v.Type()
	if optionalResult {
		if t.NumOut() == 0 {
			return reflect.Value{}, fmt.Errorf("%w: callable returns nothing, want an optional", ErrBadShape)
		}
		if !t.Out(0).Implements(presenceType) {
			return reflect.Value{}, fmt.Errorf("%w: callable returns %s, want an optional", ErrBadShape, t.Out(0))
		}
	}
	return v, nil
}
