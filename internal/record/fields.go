package record

import (
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// accessor reads and writes one Record field as a parameter.Value.
type accessor struct {
	kind parameter.Kind
	get  func(*Record) parameter.Value
	set  func(*Record, parameter.Value)
}

type binding struct {
	name string
	acc  accessor
}

func int32Field(name string, p func(*Record) *int32) binding {
	return binding{name, accessor{
		kind: parameter.KindInt32,
		get:  func(r *Record) parameter.Value { return parameter.Int32Value(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.Int32() },
	}}
}

func float64Field(name string, p func(*Record) *float64) binding {
	return binding{name, accessor{
		kind: parameter.KindFloat64,
		get:  func(r *Record) parameter.Value { return parameter.Float64Value(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.Float64() },
	}}
}

func stringField(name string, p func(*Record) *string) binding {
	return binding{name, accessor{
		kind: parameter.KindString,
		get:  func(r *Record) parameter.Value { return parameter.StringValue(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.Text() },
	}}
}

func dateField(name string, p func(*Record) *parameter.Date) binding {
	return binding{name, accessor{
		kind: parameter.KindDate,
		get:  func(r *Record) parameter.Value { return parameter.DateValue(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.Date() },
	}}
}

func timeOfDayField(name string, p func(*Record) *parameter.TimeOfDay) binding {
	return binding{name, accessor{
		kind: parameter.KindTimeOfDay,
		get:  func(r *Record) parameter.Value { return parameter.TimeOfDayValue(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.TimeOfDay() },
	}}
}

func boolField(name string, p func(*Record) *bool) binding {
	return binding{name, accessor{
		kind: parameter.KindBool,
		get:  func(r *Record) parameter.Value { return parameter.BoolValue(*p(r)) },
		set:  func(r *Record, v parameter.Value) { *p(r) = v.Bool() },
	}}
}

func enumField[E ~int32](name string, kind parameter.Kind, p func(*Record) *E) binding {
	return binding{name, accessor{
		kind: kind,
		get:  func(r *Record) parameter.Value { return parameter.EnumValue(kind, int32(*p(r))) },
		set:  func(r *Record, v parameter.Value) { *p(r) = E(v.Ordinal()) },
	}}
}

// bindings maps every canonical name to its Record field.
var bindings = []binding{
	// Identity
	stringField("ProductName", func(r *Record) *string { return &r.ProductName }),
	stringField("ReferenceNumber", func(r *Record) *string { return &r.ReferenceNumber }),
	stringField("MacAddress", func(r *Record) *string { return &r.MacAddress }),
	stringField("Language", func(r *Record) *string { return &r.Language }),
	dateField("SystemDate", func(r *Record) *parameter.Date { return &r.SystemDate }),
	timeOfDayField("SystemTime", func(r *Record) *parameter.TimeOfDay { return &r.SystemTime }),
	enumField("DaylightSaving", parameter.KindDaylightSaving, func(r *Record) *parameter.DaylightSaving { return &r.DaylightSaving }),
	boolField("TimeSync", func(r *Record) *bool { return &r.TimeSync }),
	int32Field("TimeZoneOffset", func(r *Record) *int32 { return &r.TimeZoneOffset }),
	enumField("DateFormat", parameter.KindDateFormat, func(r *Record) *parameter.DateFormat { return &r.DateFormat }),
	enumField("HeatExchangerType", parameter.KindHeatExchangerType, func(r *Record) *parameter.HeatExchangerType { return &r.HeatExchangerType }),
	enumField("TemperatureUnit", parameter.KindTemperatureUnit, func(r *Record) *parameter.TemperatureUnit { return &r.TemperatureUnit }),
	enumField("Orientation", parameter.KindOrientation, func(r *Record) *parameter.Orientation { return &r.Orientation }),
	enumField("ExternalContactFunction", parameter.KindExternalContactFunction, func(r *Record) *parameter.ExternalContactFunction { return &r.ExternalContactFunction }),
	int32Field("ExternalContactDuration", func(r *Record) *int32 { return &r.ExternalContactDuration }),
	stringField("HardwareVersion", func(r *Record) *string { return &r.HardwareVersion }),
	stringField("SerialNumber", func(r *Record) *string { return &r.SerialNumber }),
	int32Field("NominalAirflow", func(r *Record) *int32 { return &r.NominalAirflow }),
	stringField("DeviceModel", func(r *Record) *string { return &r.DeviceModel }),
	dateField("ProductionDate", func(r *Record) *parameter.Date { return &r.ProductionDate }),

	// Network
	enumField("NetworkMode", parameter.KindNetworkMode, func(r *Record) *parameter.NetworkMode { return &r.NetworkMode }),
	stringField("IPAddress", func(r *Record) *string { return &r.IPAddress }),
	stringField("SubnetMask", func(r *Record) *string { return &r.SubnetMask }),
	stringField("DefaultGateway", func(r *Record) *string { return &r.DefaultGateway }),
	stringField("DNSServer", func(r *Record) *string { return &r.DNSServer }),
	stringField("HostName", func(r *Record) *string { return &r.HostName }),
	boolField("RemoteAccess", func(r *Record) *bool { return &r.RemoteAccess }),
	int32Field("WebPort", func(r *Record) *int32 { return &r.WebPort }),
	stringField("NTPServer", func(r *Record) *string { return &r.NTPServer }),

	// Sensor control
	int32Field("SensorControlDelay", func(r *Record) *int32 { return &r.SensorControlDelay }),
	enumField("HumidityControl", parameter.KindSensorControl, func(r *Record) *parameter.SensorControl { return &r.HumidityControl }),
	int32Field("HumiditySetpoint", func(r *Record) *int32 { return &r.HumiditySetpoint }),
	int32Field("HumiditySensorCount", func(r *Record) *int32 { return &r.HumiditySensorCount }),
	int32Field("HumidityHysteresis", func(r *Record) *int32 { return &r.HumidityHysteresis }),
	enumField("CO2Control", parameter.KindSensorControl, func(r *Record) *parameter.SensorControl { return &r.CO2Control }),
	int32Field("CO2Setpoint", func(r *Record) *int32 { return &r.CO2Setpoint }),
	int32Field("CO2SensorCount", func(r *Record) *int32 { return &r.CO2SensorCount }),
	enumField("VOCControl", parameter.KindSensorControl, func(r *Record) *parameter.SensorControl { return &r.VOCControl }),
	int32Field("VOCSetpoint", func(r *Record) *int32 { return &r.VOCSetpoint }),
	int32Field("VOCSensorCount", func(r *Record) *int32 { return &r.VOCSensorCount }),
	enumField("SensorLevelMax", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.SensorLevelMax }),
	enumField("SensorLevelMin", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.SensorLevelMin }),

	// Heaters and frost protection
	enumField("PreheaterType", parameter.KindPreheaterType, func(r *Record) *parameter.PreheaterType { return &r.PreheaterType }),
	boolField("PreheaterEnabled", func(r *Record) *bool { return &r.PreheaterEnabled }),
	float64Field("PreheaterSetpoint", func(r *Record) *float64 { return &r.PreheaterSetpoint }),
	int32Field("PreheaterOutput", func(r *Record) *int32 { return &r.PreheaterOutput }),
	int32Field("PreheaterRuntime", func(r *Record) *int32 { return &r.PreheaterRuntime }),
	enumField("AfterheaterType", parameter.KindAfterheaterType, func(r *Record) *parameter.AfterheaterType { return &r.AfterheaterType }),
	boolField("AfterheaterEnabled", func(r *Record) *bool { return &r.AfterheaterEnabled }),
	float64Field("AfterheaterSetpoint", func(r *Record) *float64 { return &r.AfterheaterSetpoint }),
	int32Field("AfterheaterOutput", func(r *Record) *int32 { return &r.AfterheaterOutput }),
	int32Field("AfterheaterRuntime", func(r *Record) *int32 { return &r.AfterheaterRuntime }),
	enumField("FrostProtectionMode", parameter.KindFrostProtectionMode, func(r *Record) *parameter.FrostProtectionMode { return &r.FrostProtectionMode }),
	float64Field("FrostProtectionThreshold", func(r *Record) *float64 { return &r.FrostProtectionThreshold }),
	float64Field("FrostProtectionHysteresis", func(r *Record) *float64 { return &r.FrostProtectionHysteresis }),
	boolField("FrostProtectionActive", func(r *Record) *bool { return &r.FrostProtectionActive }),
	float64Field("HeatExchangerFrostThreshold", func(r *Record) *float64 { return &r.HeatExchangerFrostThreshold }),

	// Bypass and season
	enumField("BypassState", parameter.KindBypassState, func(r *Record) *parameter.BypassState { return &r.BypassState }),
	float64Field("BypassOpenTemperature", func(r *Record) *float64 { return &r.BypassOpenTemperature }),
	float64Field("BypassMinOutdoorTemperature", func(r *Record) *float64 { return &r.BypassMinOutdoorTemperature }),
	boolField("BypassSummerOnly", func(r *Record) *bool { return &r.BypassSummerOnly }),
	enumField("Season", parameter.KindSeason, func(r *Record) *parameter.Season { return &r.Season }),
	float64Field("SeasonChangeoverTemperature", func(r *Record) *float64 { return &r.SeasonChangeoverTemperature }),

	// Booster and standby
	int32Field("BoosterDefaultDuration", func(r *Record) *int32 { return &r.BoosterDefaultDuration }),
	int32Field("BoosterDuration", func(r *Record) *int32 { return &r.BoosterDuration }),
	enumField("BoosterLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.BoosterLevel }),
	int32Field("BoosterRemaining", func(r *Record) *int32 { return &r.BoosterRemaining }),
	boolField("BoosterActive", func(r *Record) *bool { return &r.BoosterActive }),
	int32Field("StandbyDuration", func(r *Record) *int32 { return &r.StandbyDuration }),
	enumField("StandbyLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.StandbyLevel }),
	int32Field("StandbyRemaining", func(r *Record) *int32 { return &r.StandbyRemaining }),
	boolField("StandbyActive", func(r *Record) *bool { return &r.StandbyActive }),

	// Operation and measurements
	enumField("OperationMode", parameter.KindOperationMode, func(r *Record) *parameter.OperationMode { return &r.OperationMode }),
	enumField("VentilationLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.VentilationLevel }),
	int32Field("VentilationPercent", func(r *Record) *int32 { return &r.VentilationPercent }),
	float64Field("TemperatureOutdoor", func(r *Record) *float64 { return &r.TemperatureOutdoor }),
	float64Field("TemperatureSupply", func(r *Record) *float64 { return &r.TemperatureSupply }),
	float64Field("TemperatureExtract", func(r *Record) *float64 { return &r.TemperatureExtract }),
	float64Field("TemperatureExhaust", func(r *Record) *float64 { return &r.TemperatureExhaust }),
	float64Field("TemperaturePreheater", func(r *Record) *float64 { return &r.TemperaturePreheater }),
	float64Field("TemperatureAfterheater", func(r *Record) *float64 { return &r.TemperatureAfterheater }),
	float64Field("TemperatureRoom", func(r *Record) *float64 { return &r.TemperatureRoom }),
	float64Field("HumidityExtract", func(r *Record) *float64 { return &r.HumidityExtract }),
	float64Field("HumidityOutdoor", func(r *Record) *float64 { return &r.HumidityOutdoor }),
	int32Field("CO2Level", func(r *Record) *int32 { return &r.CO2Level }),
	int32Field("VOCLevel", func(r *Record) *int32 { return &r.VOCLevel }),
	int32Field("AirQualityIndex", func(r *Record) *int32 { return &r.AirQualityIndex }),
	float64Field("HeatRecoveryEfficiency", func(r *Record) *float64 { return &r.HeatRecoveryEfficiency }),
	float64Field("HeatRecoveryPower", func(r *Record) *float64 { return &r.HeatRecoveryPower }),
	float64Field("PowerConsumption", func(r *Record) *float64 { return &r.PowerConsumption }),
	float64Field("EnergySaved", func(r *Record) *float64 { return &r.EnergySaved }),
	float64Field("EnergyConsumed", func(r *Record) *float64 { return &r.EnergyConsumed }),

	// Fans
	enumField("MinimumLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.MinimumLevel }),
	int32Field("SupplyAirflowLevel1", func(r *Record) *int32 { return &r.SupplyAirflowLevel1 }),
	int32Field("SupplyAirflowLevel2", func(r *Record) *int32 { return &r.SupplyAirflowLevel2 }),
	int32Field("SupplyAirflowLevel3", func(r *Record) *int32 { return &r.SupplyAirflowLevel3 }),
	int32Field("SupplyAirflowLevel4", func(r *Record) *int32 { return &r.SupplyAirflowLevel4 }),
	int32Field("ExtractAirflowLevel1", func(r *Record) *int32 { return &r.ExtractAirflowLevel1 }),
	int32Field("ExtractAirflowLevel2", func(r *Record) *int32 { return &r.ExtractAirflowLevel2 }),
	int32Field("ExtractAirflowLevel3", func(r *Record) *int32 { return &r.ExtractAirflowLevel3 }),
	int32Field("ExtractAirflowLevel4", func(r *Record) *int32 { return &r.ExtractAirflowLevel4 }),
	int32Field("SupplyFanSpeed", func(r *Record) *int32 { return &r.SupplyFanSpeed }),
	int32Field("ExtractFanSpeed", func(r *Record) *int32 { return &r.ExtractFanSpeed }),
	float64Field("SupplyFanPercent", func(r *Record) *float64 { return &r.SupplyFanPercent }),
	float64Field("ExtractFanPercent", func(r *Record) *float64 { return &r.ExtractFanPercent }),
	int32Field("SupplyAirflow", func(r *Record) *int32 { return &r.SupplyAirflow }),
	int32Field("ExtractAirflow", func(r *Record) *int32 { return &r.ExtractAirflow }),
	enumField("FanControlMode", parameter.KindFanControlMode, func(r *Record) *parameter.FanControlMode { return &r.FanControlMode }),
	int32Field("FanImbalance", func(r *Record) *int32 { return &r.FanImbalance }),
	int32Field("SupplyFanRuntime", func(r *Record) *int32 { return &r.SupplyFanRuntime }),
	int32Field("ExtractFanRuntime", func(r *Record) *int32 { return &r.ExtractFanRuntime }),
	boolField("FanStopEnabled", func(r *Record) *bool { return &r.FanStopEnabled }),
	int32Field("FanStartupDelay", func(r *Record) *int32 { return &r.FanStartupDelay }),

	// Vacation
	enumField("VacationMode", parameter.KindVacationMode, func(r *Record) *parameter.VacationMode { return &r.VacationMode }),
	enumField("VacationLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.VacationLevel }),
	dateField("VacationStart", func(r *Record) *parameter.Date { return &r.VacationStart }),
	dateField("VacationEnd", func(r *Record) *parameter.Date { return &r.VacationEnd }),
	int32Field("VacationInterval", func(r *Record) *int32 { return &r.VacationInterval }),
	int32Field("VacationActivePeriod", func(r *Record) *int32 { return &r.VacationActivePeriod }),
	boolField("VacationActive", func(r *Record) *bool { return &r.VacationActive }),

	// Filter
	int32Field("FilterChangeInterval", func(r *Record) *int32 { return &r.FilterChangeInterval }),
	int32Field("FilterRemainingDays", func(r *Record) *int32 { return &r.FilterRemainingDays }),
	enumField("FilterState", parameter.KindFilterState, func(r *Record) *parameter.FilterState { return &r.FilterState }),
	dateField("FilterLastChanged", func(r *Record) *parameter.Date { return &r.FilterLastChanged }),
	float64Field("FilterPressureSupply", func(r *Record) *float64 { return &r.FilterPressureSupply }),
	float64Field("FilterPressureExtract", func(r *Record) *float64 { return &r.FilterPressureExtract }),
	boolField("FilterResetRequested", func(r *Record) *bool { return &r.FilterResetRequested }),
	int32Field("FilterChangeCount", func(r *Record) *int32 { return &r.FilterChangeCount }),

	// Firmware
	stringField("FirmwareVersion", func(r *Record) *string { return &r.FirmwareVersion }),
	stringField("BootloaderVersion", func(r *Record) *string { return &r.BootloaderVersion }),
	stringField("WebVersion", func(r *Record) *string { return &r.WebVersion }),
	stringField("ControllerVersion", func(r *Record) *string { return &r.ControllerVersion }),
	int32Field("OperatingHours", func(r *Record) *int32 { return &r.OperatingHours }),
	int32Field("PowerOnCount", func(r *Record) *int32 { return &r.PowerOnCount }),
	dateField("LastBootDate", func(r *Record) *parameter.Date { return &r.LastBootDate }),
	timeOfDayField("LastBootTime", func(r *Record) *parameter.TimeOfDay { return &r.LastBootTime }),
	int32Field("Uptime", func(r *Record) *int32 { return &r.Uptime }),

	// Week program
	enumField("WeekProgram", parameter.KindWeekProgram, func(r *Record) *parameter.WeekProgram { return &r.WeekProgram }),
	boolField("WeekProgramActive", func(r *Record) *bool { return &r.WeekProgramActive }),
	timeOfDayField("ProgramStartMonday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartMonday }),
	timeOfDayField("ProgramStartTuesday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartTuesday }),
	timeOfDayField("ProgramStartWednesday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartWednesday }),
	timeOfDayField("ProgramStartThursday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartThursday }),
	timeOfDayField("ProgramStartFriday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartFriday }),
	timeOfDayField("ProgramStartSaturday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartSaturday }),
	timeOfDayField("ProgramStartSunday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramStartSunday }),
	timeOfDayField("ProgramEndMonday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndMonday }),
	timeOfDayField("ProgramEndTuesday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndTuesday }),
	timeOfDayField("ProgramEndWednesday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndWednesday }),
	timeOfDayField("ProgramEndThursday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndThursday }),
	timeOfDayField("ProgramEndFriday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndFriday }),
	timeOfDayField("ProgramEndSaturday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndSaturday }),
	timeOfDayField("ProgramEndSunday", func(r *Record) *parameter.TimeOfDay { return &r.ProgramEndSunday }),
	enumField("ProgramDayLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.ProgramDayLevel }),
	enumField("ProgramNightLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.ProgramNightLevel }),

	// Faults
	enumField("ErrorState", parameter.KindErrorState, func(r *Record) *parameter.ErrorState { return &r.ErrorState }),
	int32Field("ErrorCode", func(r *Record) *int32 { return &r.ErrorCode }),
	stringField("ErrorText", func(r *Record) *string { return &r.ErrorText }),
	int32Field("WarningCode", func(r *Record) *int32 { return &r.WarningCode }),
	stringField("WarningText", func(r *Record) *string { return &r.WarningText }),
	int32Field("InfoCode", func(r *Record) *int32 { return &r.InfoCode }),
	stringField("InfoText", func(r *Record) *string { return &r.InfoText }),
	int32Field("ErrorCount", func(r *Record) *int32 { return &r.ErrorCount }),
	dateField("LastErrorDate", func(r *Record) *parameter.Date { return &r.LastErrorDate }),
	timeOfDayField("LastErrorTime", func(r *Record) *parameter.TimeOfDay { return &r.LastErrorTime }),
	boolField("SensorFaultOutdoor", func(r *Record) *bool { return &r.SensorFaultOutdoor }),
	boolField("SensorFaultSupply", func(r *Record) *bool { return &r.SensorFaultSupply }),
	boolField("SensorFaultExtract", func(r *Record) *bool { return &r.SensorFaultExtract }),
	boolField("SensorFaultExhaust", func(r *Record) *bool { return &r.SensorFaultExhaust }),
	boolField("SupplyFanFault", func(r *Record) *bool { return &r.SupplyFanFault }),
	boolField("ExtractFanFault", func(r *Record) *bool { return &r.ExtractFanFault }),
	boolField("PreheaterFault", func(r *Record) *bool { return &r.PreheaterFault }),
	boolField("AfterheaterFault", func(r *Record) *bool { return &r.AfterheaterFault }),
	boolField("BypassFault", func(r *Record) *bool { return &r.BypassFault }),
	boolField("CommunicationFault", func(r *Record) *bool { return &r.CommunicationFault }),
	boolField("FrostAlarm", func(r *Record) *bool { return &r.FrostAlarm }),
	boolField("FilterAlarm", func(r *Record) *bool { return &r.FilterAlarm }),
	int32Field("StatusFlags", func(r *Record) *int32 { return &r.StatusFlags }),
	int32Field("LastErrorCode", func(r *Record) *int32 { return &r.LastErrorCode }),

	// Control panel
	int32Field("DisplayBrightness", func(r *Record) *int32 { return &r.DisplayBrightness }),
	int32Field("DisplayTimeout", func(r *Record) *int32 { return &r.DisplayTimeout }),
	boolField("DisplayLocked", func(r *Record) *bool { return &r.DisplayLocked }),
	boolField("DisplayPinEnabled", func(r *Record) *bool { return &r.DisplayPinEnabled }),
	boolField("KeySoundEnabled", func(r *Record) *bool { return &r.KeySoundEnabled }),
	int32Field("DisplayContrast", func(r *Record) *int32 { return &r.DisplayContrast }),
	boolField("ScreenSaverEnabled", func(r *Record) *bool { return &r.ScreenSaverEnabled }),
	int32Field("DisplayStartPage", func(r *Record) *int32 { return &r.DisplayStartPage }),

	// Night cooling
	boolField("NightCoolingEnabled", func(r *Record) *bool { return &r.NightCoolingEnabled }),
	timeOfDayField("NightCoolingStart", func(r *Record) *parameter.TimeOfDay { return &r.NightCoolingStart }),
	timeOfDayField("NightCoolingEnd", func(r *Record) *parameter.TimeOfDay { return &r.NightCoolingEnd }),
	float64Field("NightCoolingMinTemperature", func(r *Record) *float64 { return &r.NightCoolingMinTemperature }),
	enumField("NightCoolingLevel", parameter.KindVentilationLevel, func(r *Record) *parameter.VentilationLevel { return &r.NightCoolingLevel }),
	float64Field("SupplyTemperatureSetpoint", func(r *Record) *float64 { return &r.SupplyTemperatureSetpoint }),
	float64Field("RoomTemperatureSetpoint", func(r *Record) *float64 { return &r.RoomTemperatureSetpoint }),
	boolField("CoolingRecoveryEnabled", func(r *Record) *bool { return &r.CoolingRecoveryEnabled }),

	// Ground heat exchanger
	boolField("GroundExchangerEnabled", func(r *Record) *bool { return &r.GroundExchangerEnabled }),
	float64Field("GroundExchangerMinTemperature", func(r *Record) *float64 { return &r.GroundExchangerMinTemperature }),
	float64Field("GroundExchangerMaxTemperature", func(r *Record) *float64 { return &r.GroundExchangerMaxTemperature }),
	boolField("GroundExchangerActive", func(r *Record) *bool { return &r.GroundExchangerActive }),
	float64Field("TemperatureGroundExchanger", func(r *Record) *float64 { return &r.TemperatureGroundExchanger }),

	// Statistics
	int32Field("DailyRuntime", func(r *Record) *int32 { return &r.DailyRuntime }),
	int32Field("RuntimeLevel0", func(r *Record) *int32 { return &r.RuntimeLevel0 }),
	int32Field("RuntimeLevel1", func(r *Record) *int32 { return &r.RuntimeLevel1 }),
	int32Field("RuntimeLevel2", func(r *Record) *int32 { return &r.RuntimeLevel2 }),
	int32Field("RuntimeLevel3", func(r *Record) *int32 { return &r.RuntimeLevel3 }),
	int32Field("RuntimeLevel4", func(r *Record) *int32 { return &r.RuntimeLevel4 }),
	int32Field("BoosterActivations", func(r *Record) *int32 { return &r.BoosterActivations }),
	int32Field("StandbyActivations", func(r *Record) *int32 { return &r.StandbyActivations }),
	float64Field("AverageSupplyTemperature", func(r *Record) *float64 { return &r.AverageSupplyTemperature }),
	float64Field("AverageExtractTemperature", func(r *Record) *float64 { return &r.AverageExtractTemperature }),
	float64Field("AverageOutdoorTemperature", func(r *Record) *float64 { return &r.AverageOutdoorTemperature }),
	float64Field("AverageHumidity", func(r *Record) *float64 { return &r.AverageHumidity }),
	int32Field("AverageCO2", func(r *Record) *int32 { return &r.AverageCO2 }),
	dateField("StatisticsResetDate", func(r *Record) *parameter.Date { return &r.StatisticsResetDate }),

	// Service
	int32Field("ServiceInterval", func(r *Record) *int32 { return &r.ServiceInterval }),
	boolField("ServiceDue", func(r *Record) *bool { return &r.ServiceDue }),
	dateField("LastServiceDate", func(r *Record) *parameter.Date { return &r.LastServiceDate }),
	dateField("NextServiceDate", func(r *Record) *parameter.Date { return &r.NextServiceDate }),
	stringField("ServiceContact", func(r *Record) *string { return &r.ServiceContact }),
	stringField("ServicePhone", func(r *Record) *string { return &r.ServicePhone }),
	stringField("InstallerName", func(r *Record) *string { return &r.InstallerName }),
	dateField("CommissioningDate", func(r *Record) *parameter.Date { return &r.CommissioningDate }),
}

var accessors map[string]accessor

func init() {
	accessors = make(map[string]accessor, len(bindings))
	for _, b := range bindings {
		accessors[b.name] = b.acc
	}
}
