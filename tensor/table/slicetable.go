// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/reflectx"
	"github.com/ihmeuw-msca/crosswalk/tensor"
)

// NewSliceTable returns a new Table with data from the given slice
// of structs. Each exported string, float or int field becomes a column,
// named by its `table:"name"` tag if present, else the field name.
// Fields tagged `table:"-"` are skipped.
func NewSliceTable(st any) (*Table, error) {
	npv := reflectx.NonPointerValue(reflect.ValueOf(st))
	if npv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("NewSliceTable: not a slice")
	}
	eltyp := reflectx.NonPointerType(npv.Type().Elem())
	if eltyp.Kind() != reflect.Struct {
		return nil, fmt.Errorf("NewSliceTable: element type is not a struct")
	}
	dt := NewTable()
	for _, f := range sliceFields(eltyp) {
		tsr, err := tensor.NewOfType(columnKind(f.Type.Kind()), 0)
		if err != nil {
			return nil, err
		}
		if err := dt.AddColumn(sliceFieldName(f), tsr); err != nil {
			return nil, err
		}
	}
	UpdateSliceTable(st, dt)
	return dt, nil
}

// UpdateSliceTable updates given Table with data from the given slice
// of structs, which must be the same type as used to configure the table
func UpdateSliceTable(st any, dt *Table) {
	npv := reflectx.NonPointerValue(reflect.ValueOf(st))
	eltyp := reflectx.NonPointerType(npv.Type().Elem())
	flds := sliceFields(eltyp)

	nr := npv.Len()
	dt.SetNumRows(nr)
	for ri := range nr {
		ev := reflectx.NonPointerValue(npv.Index(ri))
		for _, f := range flds {
			cl := dt.Column(sliceFieldName(f))
			if cl == nil {
				continue
			}
			fv := ev.FieldByIndex(f.Index)
			switch {
			case fv.Kind() == reflect.String:
				cl.SetString1D(fv.String(), ri)
			case fv.CanInt():
				cl.SetFloat1D(float64(fv.Int()), ri)
			case fv.CanFloat():
				cl.SetFloat1D(fv.Float(), ri)
			}
		}
	}
}

func sliceFields(typ reflect.Type) []reflect.StructField {
	var flds []reflect.StructField
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() || f.Tag.Get("table") == "-" {
			continue
		}
		switch f.Type.Kind() {
		case reflect.String, reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int32, reflect.Int64:
			flds = append(flds, f)
		}
	}
	return flds
}

func sliceFieldName(f reflect.StructField) string {
	if nm := f.Tag.Get("table"); nm != "" {
		return nm
	}
	return f.Name
}

// columnKind maps a struct field kind onto a supported column type.
func columnKind(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.String:
		return reflect.String
	case reflect.Int, reflect.Int32, reflect.Int64:
		return reflect.Int
	}
	return reflect.Float64
}
