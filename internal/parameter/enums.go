package parameter

import "strconv"

// OperationMode selects automatic (sensor/program driven) or manual control.
type OperationMode int32

const (
	OperationAutomatic OperationMode = iota
	OperationManual
)

var operationModeNames = []string{"Automatic", "Manual"}

func (v OperationMode) String() string { return enumString(KindOperationMode, int32(v)) }

// MarshalText implements encoding.TextMarshaler.
func (v OperationMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// VentilationLevel is a fan stage from 0 (off) to 4 (intensive).
type VentilationLevel int32

const (
	VentilationLevel0 VentilationLevel = iota
	VentilationLevel1
	VentilationLevel2
	VentilationLevel3
	VentilationLevel4
)

var ventilationLevelNames = []string{"Level0", "Level1", "Level2", "Level3", "Level4"}

func (v VentilationLevel) String() string { return enumString(KindVentilationLevel, int32(v)) }

// MarshalText renders the member name.
func (v VentilationLevel) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// DateFormat is the date layout shown on the control panel.
type DateFormat int32

const (
	DateFormatDayMonthYear DateFormat = iota
	DateFormatMonthDayYear
	DateFormatYearMonthDay
)

var dateFormatNames = []string{"DayMonthYear", "MonthDayYear", "YearMonthDay"}

func (v DateFormat) String() string { return enumString(KindDateFormat, int32(v)) }

// MarshalText renders the member name.
func (v DateFormat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// DaylightSaving enumerates the device's daylight saving setting.
type DaylightSaving int32

const (
	DaylightSavingOff DaylightSaving = iota
	DaylightSavingAuto
)

var daylightSavingNames = []string{"Off", "Auto"}

func (v DaylightSaving) String() string { return enumString(KindDaylightSaving, int32(v)) }

// MarshalText renders the member name.
func (v DaylightSaving) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// HeatExchangerType enumerates the device's heat exchanger type setting.
type HeatExchangerType int32

const (
	HeatExchangerStandard HeatExchangerType = iota
	HeatExchangerEnthalpy
	HeatExchangerAluminium
)

var heatExchangerTypeNames = []string{"Standard", "Enthalpy", "Aluminium"}

func (v HeatExchangerType) String() string { return enumString(KindHeatExchangerType, int32(v)) }

// MarshalText renders the member name.
func (v HeatExchangerType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// PreheaterType enumerates the device's preheater type setting.
type PreheaterType int32

const (
	PreheaterNone PreheaterType = iota
	PreheaterElectric
	PreheaterHydronic
)

var preheaterTypeNames = []string{"None", "Electric", "Hydronic"}

func (v PreheaterType) String() string { return enumString(KindPreheaterType, int32(v)) }

// MarshalText renders the member name.
func (v PreheaterType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// AfterheaterType enumerates the device's afterheater type setting.
type AfterheaterType int32

const (
	AfterheaterNone AfterheaterType = iota
	AfterheaterElectric
	AfterheaterHydronic
)

var afterheaterTypeNames = []string{"None", "Electric", "Hydronic"}

func (v AfterheaterType) String() string { return enumString(KindAfterheaterType, int32(v)) }

// MarshalText renders the member name.
func (v AfterheaterType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ExternalContactFunction is the action bound to the external switch contact.
type ExternalContactFunction int32

const (
	ContactDisabled ExternalContactFunction = iota
	ContactLevel1
	ContactLevel2
	ContactLevel3
	ContactLevel4
	ContactBooster
	ContactStandby
)

var externalContactFunctionNames = []string{"Disabled", "Level1", "Level2", "Level3", "Level4", "Booster", "Standby"}

func (v ExternalContactFunction) String() string {
	return enumString(KindExternalContactFunction, int32(v))
}

// MarshalText renders the member name.
func (v ExternalContactFunction) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// SensorControl is the control mode of a humidity, CO2 or VOC sensor loop.
type SensorControl int32

const (
	SensorControlOff SensorControl = iota
	SensorControlStepped
	SensorControlStepless
)

var sensorControlNames = []string{"Off", "Stepped", "Stepless"}

func (v SensorControl) String() string { return enumString(KindSensorControl, int32(v)) }

// MarshalText renders the member name.
func (v SensorControl) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// BypassState enumerates the device's bypass state setting.
type BypassState int32

const (
	BypassClosed BypassState = iota
	BypassOpen
)

var bypassStateNames = []string{"Closed", "Open"}

func (v BypassState) String() string { return enumString(KindBypassState, int32(v)) }

// MarshalText renders the member name.
func (v BypassState) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// FrostProtectionMode enumerates the device's frost protection mode setting.
type FrostProtectionMode int32

const (
	FrostProtectionOff FrostProtectionMode = iota
	FrostProtectionFanReduction
	FrostProtectionPreheater
)

var frostProtectionModeNames = []string{"Off", "FanReduction", "Preheater"}

func (v FrostProtectionMode) String() string { return enumString(KindFrostProtectionMode, int32(v)) }

// MarshalText renders the member name.
func (v FrostProtectionMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// FilterState enumerates the device's filter state setting.
type FilterState int32

const (
	FilterOK FilterState = iota
	FilterChangeDue
	FilterChangeOverdue
)

var filterStateNames = []string{"OK", "ChangeDue", "ChangeOverdue"}

func (v FilterState) String() string { return enumString(KindFilterState, int32(v)) }

// MarshalText renders the member name.
func (v FilterState) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// VacationMode controls ventilation while the occupants are away.
type VacationMode int32

const (
	VacationOff VacationMode = iota
	VacationIntermittent
	VacationConstant
)

var vacationModeNames = []string{"Off", "Intermittent", "Constant"}

func (v VacationMode) String() string { return enumString(KindVacationMode, int32(v)) }

// MarshalText renders the member name.
func (v VacationMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// NetworkMode enumerates the device's network mode setting.
type NetworkMode int32

const (
	NetworkStatic NetworkMode = iota
	NetworkDHCP
)

var networkModeNames = []string{"Static", "DHCP"}

func (v NetworkMode) String() string { return enumString(KindNetworkMode, int32(v)) }

// MarshalText renders the member name.
func (v NetworkMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// TemperatureUnit enumerates the device's temperature unit setting.
type TemperatureUnit int32

const (
	UnitCelsius TemperatureUnit = iota
	UnitFahrenheit
)

var temperatureUnitNames = []string{"Celsius", "Fahrenheit"}

func (v TemperatureUnit) String() string { return enumString(KindTemperatureUnit, int32(v)) }

// MarshalText renders the member name.
func (v TemperatureUnit) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// FanControlMode is how fan setpoints are expressed.
type FanControlMode int32

const (
	FanControlPercent FanControlMode = iota
	FanControlVoltage
	FanControlSpeed
)

var fanControlModeNames = []string{"Percent", "Voltage", "Speed"}

func (v FanControlMode) String() string { return enumString(KindFanControlMode, int32(v)) }

// MarshalText renders the member name.
func (v FanControlMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Orientation is the installed handing of the unit.
type Orientation int32

const (
	OrientationLeft Orientation = iota
	OrientationRight
)

var orientationNames = []string{"Left", "Right"}

func (v Orientation) String() string { return enumString(KindOrientation, int32(v)) }

// MarshalText renders the member name.
func (v Orientation) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ErrorState enumerates the device's error state setting.
type ErrorState int32

const (
	ErrorStateNone ErrorState = iota
	ErrorStateWarning
	ErrorStateFault
)

var errorStateNames = []string{"None", "Warning", "Fault"}

func (v ErrorState) String() string { return enumString(KindErrorState, int32(v)) }

// MarshalText renders the member name.
func (v ErrorState) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Season enumerates the device's season setting.
type Season int32

const (
	SeasonWinter Season = iota
	SeasonSummer
)

var seasonNames = []string{"Winter", "Summer"}

func (v Season) String() string { return enumString(KindSeason, int32(v)) }

// MarshalText renders the member name.
func (v Season) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// WeekProgram selects the weekly schedule.
type WeekProgram int32

const (
	WeekProgramOff WeekProgram = iota
	WeekProgramStandard1
	WeekProgramStandard2
	WeekProgramWorkday
	WeekProgramCustom
)

var weekProgramNames = []string{"Off", "Standard1", "Standard2", "Workday", "Custom"}

func (v WeekProgram) String() string { return enumString(KindWeekProgram, int32(v)) }

// MarshalText renders the member name.
func (v WeekProgram) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// enumNames returns the member names of an enumeration kind, indexed by
// ordinal, or nil when k is not an enumeration.
func enumNames(k Kind) []string {
	switch k {
	case KindOperationMode:
		return operationModeNames
	case KindVentilationLevel:
		return ventilationLevelNames
	case KindDateFormat:
		return dateFormatNames
	case KindDaylightSaving:
		return daylightSavingNames
	case KindHeatExchangerType:
		return heatExchangerTypeNames
	case KindPreheaterType:
		return preheaterTypeNames
	case KindAfterheaterType:
		return afterheaterTypeNames
	case KindExternalContactFunction:
		return externalContactFunctionNames
	case KindSensorControl:
		return sensorControlNames
	case KindBypassState:
		return bypassStateNames
	case KindFrostProtectionMode:
		return frostProtectionModeNames
	case KindFilterState:
		return filterStateNames
	case KindVacationMode:
		return vacationModeNames
	case KindNetworkMode:
		return networkModeNames
	case KindTemperatureUnit:
		return temperatureUnitNames
	case KindFanControlMode:
		return fanControlModeNames
	case KindOrientation:
		return orientationNames
	case KindErrorState:
		return errorStateNames
	case KindSeason:
		return seasonNames
	case KindWeekProgram:
		return weekProgramNames
	}
	return nil
}

// enumTyped converts an ordinal into the Go enumeration type for k.
func enumTyped(k Kind, n int32) any {
	switch k {
	case KindOperationMode:
		return OperationMode(n)
	case KindVentilationLevel:
		return VentilationLevel(n)
	case KindDateFormat:
		return DateFormat(n)
	case KindDaylightSaving:
		return DaylightSaving(n)
	case KindHeatExchangerType:
		return HeatExchangerType(n)
	case KindPreheaterType:
		return PreheaterType(n)
	case KindAfterheaterType:
		return AfterheaterType(n)
	case KindExternalContactFunction:
		return ExternalContactFunction(n)
	case KindSensorControl:
		return SensorControl(n)
	case KindBypassState:
		return BypassState(n)
	case KindFrostProtectionMode:
		return FrostProtectionMode(n)
	case KindFilterState:
		return FilterState(n)
	case KindVacationMode:
		return VacationMode(n)
	case KindNetworkMode:
		return NetworkMode(n)
	case KindTemperatureUnit:
		return TemperatureUnit(n)
	case KindFanControlMode:
		return FanControlMode(n)
	case KindOrientation:
		return Orientation(n)
	case KindErrorState:
		return ErrorState(n)
	case KindSeason:
		return Season(n)
	case KindWeekProgram:
		return WeekProgram(n)
	}
	return n
}

// IsMember reports whether n is a declared ordinal of enumeration kind k.
func IsMember(k Kind, n int32) bool {
	names := enumNames(k)
	return n >= 0 && int(n) < len(names)
}

// Members returns the member names of enumeration kind k in ordinal order.
// It returns nil for non-enumeration kinds.
func Members(k Kind) []string {
	names := enumNames(k)
	if names == nil {
		return nil
	}
	return append([]string(nil), names...)
}

func enumString(k Kind, n int32) string {
	if IsMember(k, n) {
		return enumNames(k)[n]
	}
	return strconv.Itoa(int(n))
}
