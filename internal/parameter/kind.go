package parameter

// Kind identifies the value type of a parameter.
type Kind uint8

// Scalar kinds.
const (
	KindInvalid Kind = iota
	KindInt32
	KindFloat64
	KindString
	KindDate
	KindTimeOfDay
	KindBool
)

// Enumeration kinds. Each has a matching Go type of the same name.
const (
	KindOperationMode Kind = iota + 64
	KindVentilationLevel
	KindDateFormat
	KindDaylightSaving
	KindHeatExchangerType
	KindPreheaterType
	KindAfterheaterType
	KindExternalContactFunction
	KindSensorControl
	KindBypassState
	KindFrostProtectionMode
	KindFilterState
	KindVacationMode
	KindNetworkMode
	KindTemperatureUnit
	KindFanControlMode
	KindOrientation
	KindErrorState
	KindSeason
	KindWeekProgram
)

// IsEnum reports whether k is one of the enumeration kinds.
func (k Kind) IsEnum() bool {
	return enumNames(k) != nil
}

// IsNumeric reports whether values of kind k have a numeric representation
// (integers, floats, bools and enumeration ordinals).
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt32, KindFloat64, KindBool:
		return true
	}
	return k.IsEnum()
}

// String returns the kind's name as used in API listings.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindTimeOfDay:
		return "time"
	case KindBool:
		return "bool"
	case KindOperationMode:
		return "OperationMode"
	case KindVentilationLevel:
		return "VentilationLevel"
	case KindDateFormat:
		return "DateFormat"
	case KindDaylightSaving:
		return "DaylightSaving"
	case KindHeatExchangerType:
		return "HeatExchangerType"
	case KindPreheaterType:
		return "PreheaterType"
	case KindAfterheaterType:
		return "AfterheaterType"
	case KindExternalContactFunction:
		return "ExternalContactFunction"
	case KindSensorControl:
		return "SensorControl"
	case KindBypassState:
		return "BypassState"
	case KindFrostProtectionMode:
		return "FrostProtectionMode"
	case KindFilterState:
		return "FilterState"
	case KindVacationMode:
		return "VacationMode"
	case KindNetworkMode:
		return "NetworkMode"
	case KindTemperatureUnit:
		return "TemperatureUnit"
	case KindFanControlMode:
		return "FanControlMode"
	case KindOrientation:
		return "Orientation"
	case KindErrorState:
		return "ErrorState"
	case KindSeason:
		return "Season"
	case KindWeekProgram:
		return "WeekProgram"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
