package record

import (
	"fmt"
	"reflect"
	"time"

	"dario.cat/mergo"
)

// timePatchTransformer teaches mergo to treat time.Time as a scalar: a
// non-zero source time replaces the destination wholesale. Without it mergo
// would merge the unexported wall/ext/loc fields individually and could
// produce a corrupt timestamp.
type timePatchTransformer struct{}

func (timePatchTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if t, ok := src.Interface().(time.Time); ok && !t.IsZero() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// MergePatch overlays the non-zero fields of patch onto dst. Zero-valued
// patch fields leave dst untouched, which gives Update its
// untouched-fields-preserved guarantee. Identity and lifecycle fields are
// the caller's responsibility to restore afterwards.
func MergePatch[T Entity](dst, patch T) error {
	if err := mergo.Merge(dst, patch, mergo.WithOverride, mergo.WithTransformers(timePatchTransformer{})); err != nil {
		return fmt.Errorf("error merging record patch: %w", err)
	}
	return nil
}
