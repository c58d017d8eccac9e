// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"reflect"

	"dario.cat/mergo"

	"github.com/MKhiriev/deploy-profiles/models"
)

// wholeMapTransformer makes mergo treat a non-empty map as a single set
// value. Without it mergo would add default keys to an explicit map.
type wholeMapTransformer struct{}

func (wholeMapTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() != reflect.Map {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.Len() == 0 && src.Len() > 0 && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// fillMissing backfills every empty field of existing from fallback, section
// by section. Non-empty fields of existing are never touched. A section that
// existing lacks is taken whole from fallback.
//
// fallback is deep-copied first so existing never shares pointers, slices or
// maps with it.
func fillMissing(existing *models.Profile, fallback models.Profile) error {
	src := fallback.Clone()
	return mergo.Merge(existing, src, mergo.WithTransformers(wholeMapTransformer{}))
}
