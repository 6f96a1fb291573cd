// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"fmt"
	"math"
	"strings"

	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/common"
	"github.com/spf13/cast"
)

// newResult converts a value read from the server into a CommandValue of
// the resource's value type.
func newResult(req sdkModel.CommandRequest, reading interface{}) (*sdkModel.CommandValue, error) {
	castError := "fail to parse %v reading, %v"

	if !checkValueInRange(req.Type, reading) {
		return nil, fmt.Errorf("parse reading fail. Reading %v is out of the value type(%v)'s range", reading, req.Type)
	}

	var val interface{}
	var err error
	switch req.Type {
	case common.ValueTypeBool:
		val, err = cast.ToBoolE(reading)
	case common.ValueTypeString:
		val, err = toString(reading)
	case common.ValueTypeStringArray:
		val, err = cast.ToStringSliceE(reading)
	case common.ValueTypeUint8:
		val, err = cast.ToUint8E(reading)
	case common.ValueTypeUint16:
		val, err = cast.ToUint16E(reading)
	case common.ValueTypeUint32:
		val, err = cast.ToUint32E(reading)
	case common.ValueTypeUint64:
		val, err = cast.ToUint64E(reading)
	case common.ValueTypeInt8:
		val, err = cast.ToInt8E(reading)
	case common.ValueTypeInt16:
		val, err = cast.ToInt16E(reading)
	case common.ValueTypeInt32:
		val, err = cast.ToInt32E(reading)
	case common.ValueTypeInt64:
		val, err = cast.ToInt64E(reading)
	case common.ValueTypeFloat32:
		val, err = cast.ToFloat32E(reading)
	case common.ValueTypeFloat64:
		val, err = cast.ToFloat64E(reading)
	default:
		return nil, fmt.Errorf("return result fail, none supported value type: %v", req.Type)
	}
	if err != nil {
		return nil, fmt.Errorf(castError, req.DeviceResourceName, err)
	}
	return sdkModel.NewCommandValue(req.DeviceResourceName, req.Type, val)
}

// toString renders string arrays, such as the NamespaceArray, as a
// comma separated list.
func toString(reading interface{}) (string, error) {
	if ss, ok := reading.([]string); ok {
		return strings.Join(ss, ","), nil
	}
	if s, ok := reading.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return cast.ToStringE(reading)
}

// newCommandValue extracts the value of a write parameter.
func newCommandValue(valueType string, param *sdkModel.CommandValue) (interface{}, error) {
	if param == nil {
		return nil, fmt.Errorf("fail to convert param, no value given")
	}

	var commandValue interface{}
	var err error
	switch valueType {
	case common.ValueTypeBool:
		commandValue, err = param.BoolValue()
	case common.ValueTypeString:
		commandValue, err = param.StringValue()
	case common.ValueTypeStringArray:
		commandValue, err = param.StringArrayValue()
	case common.ValueTypeUint8:
		commandValue, err = param.Uint8Value()
	case common.ValueTypeUint16:
		commandValue, err = param.Uint16Value()
	case common.ValueTypeUint32:
		commandValue, err = param.Uint32Value()
	case common.ValueTypeUint64:
		commandValue, err = param.Uint64Value()
	case common.ValueTypeInt8:
		commandValue, err = param.Int8Value()
	case common.ValueTypeInt16:
		commandValue, err = param.Int16Value()
	case common.ValueTypeInt32:
		commandValue, err = param.Int32Value()
	case common.ValueTypeInt64:
		commandValue, err = param.Int64Value()
	case common.ValueTypeFloat32:
		commandValue, err = param.Float32Value()
	case common.ValueTypeFloat64:
		commandValue, err = param.Float64Value()
	default:
		err = fmt.Errorf("fail to convert param, none supported value type: %v", valueType)
	}

	return commandValue, err
}

// checkValueInRange reports whether a numeric reading fits the value type.
// Non-numeric readings and value types are left to the cast.
func checkValueInRange(valueType string, reading interface{}) bool {
	switch valueType {
	case common.ValueTypeUint8, common.ValueTypeUint16, common.ValueTypeUint32, common.ValueTypeUint64:
		var max uint64
		switch valueType {
		case common.ValueTypeUint8:
			max = math.MaxUint8
		case common.ValueTypeUint16:
			max = math.MaxUint16
		case common.ValueTypeUint32:
			max = math.MaxUint32
		default:
			max = math.MaxUint64
		}
		if isSigned(reading) {
			v := cast.ToInt64(reading)
			return v >= 0 && uint64(v) <= max
		}
		if isUnsigned(reading) {
			return cast.ToUint64(reading) <= max
		}
		if isFloat(reading) {
			v := cast.ToFloat64(reading)
			return v >= 0 && v <= float64(max)
		}
	case common.ValueTypeInt8, common.ValueTypeInt16, common.ValueTypeInt32, common.ValueTypeInt64:
		var min, max int64
		switch valueType {
		case common.ValueTypeInt8:
			min, max = math.MinInt8, math.MaxInt8
		case common.ValueTypeInt16:
			min, max = math.MinInt16, math.MaxInt16
		case common.ValueTypeInt32:
			min, max = math.MinInt32, math.MaxInt32
		default:
			min, max = math.MinInt64, math.MaxInt64
		}
		if isSigned(reading) {
			v := cast.ToInt64(reading)
			return v >= min && v <= max
		}
		if isUnsigned(reading) {
			return cast.ToUint64(reading) <= uint64(max)
		}
		if isFloat(reading) {
			v := cast.ToFloat64(reading)
			return v >= float64(min) && v <= float64(max)
		}
	case common.ValueTypeFloat32:
		if v, ok := reading.(float64); ok {
			return math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) <= math.MaxFloat32
		}
	}
	return true
}

func isSigned(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return true
	}
	return false
}

func isUnsigned(v interface{}) bool {
	switch v.(type) {
	case uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isFloat(v interface{}) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}
