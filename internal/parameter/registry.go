package parameter

import "fmt"

// Descriptor describes one device parameter.
type Descriptor struct {
	Name  string // Canonical name, e.g. "TemperatureOutdoor"
	Label string // Protocol label, e.g. "v00104"
	Kind  Kind   // Value type
}

// descriptors is the exhaustive parameter catalogue in declaration order.
// Labels follow the unit's own numbering; gaps are parameters the gateway
// does not track.
var descriptors = []Descriptor{
	// ── Identity ─────────────────────────────────────────────
	{Name: "ProductName", Label: "v00000", Kind: KindString},
	{Name: "ReferenceNumber", Label: "v00001", Kind: KindString},
	{Name: "MacAddress", Label: "v00002", Kind: KindString},
	{Name: "Language", Label: "v00003", Kind: KindString},
	{Name: "SystemDate", Label: "v00004", Kind: KindDate},
	{Name: "SystemTime", Label: "v00005", Kind: KindTimeOfDay},
	{Name: "DaylightSaving", Label: "v00006", Kind: KindDaylightSaving},
	{Name: "TimeSync", Label: "v00007", Kind: KindBool},
	{Name: "TimeZoneOffset", Label: "v00008", Kind: KindInt32},
	{Name: "DateFormat", Label: "v00009", Kind: KindDateFormat},
	{Name: "HeatExchangerType", Label: "v00010", Kind: KindHeatExchangerType},
	{Name: "TemperatureUnit", Label: "v00011", Kind: KindTemperatureUnit},
	{Name: "Orientation", Label: "v00012", Kind: KindOrientation},
	{Name: "ExternalContactFunction", Label: "v00013", Kind: KindExternalContactFunction},
	{Name: "ExternalContactDuration", Label: "v00014", Kind: KindInt32},
	{Name: "HardwareVersion", Label: "v00015", Kind: KindString},
	{Name: "SerialNumber", Label: "v00016", Kind: KindString},
	{Name: "NominalAirflow", Label: "v00017", Kind: KindInt32},
	{Name: "DeviceModel", Label: "v00018", Kind: KindString},
	{Name: "ProductionDate", Label: "v00019", Kind: KindDate},

	// ── Network ──────────────────────────────────────────────
	{Name: "NetworkMode", Label: "v00020", Kind: KindNetworkMode},
	{Name: "IPAddress", Label: "v00021", Kind: KindString},
	{Name: "SubnetMask", Label: "v00022", Kind: KindString},
	{Name: "DefaultGateway", Label: "v00023", Kind: KindString},
	{Name: "DNSServer", Label: "v00024", Kind: KindString},
	{Name: "HostName", Label: "v00025", Kind: KindString},
	{Name: "RemoteAccess", Label: "v00026", Kind: KindBool},
	{Name: "WebPort", Label: "v00027", Kind: KindInt32},
	{Name: "NTPServer", Label: "v00028", Kind: KindString},

	// ── Sensor control ───────────────────────────────────────
	{Name: "SensorControlDelay", Label: "v00030", Kind: KindInt32},
	{Name: "HumidityControl", Label: "v00033", Kind: KindSensorControl},
	{Name: "HumiditySetpoint", Label: "v00034", Kind: KindInt32},
	{Name: "HumiditySensorCount", Label: "v00035", Kind: KindInt32},
	{Name: "HumidityHysteresis", Label: "v00036", Kind: KindInt32},
	{Name: "CO2Control", Label: "v00037", Kind: KindSensorControl},
	{Name: "CO2Setpoint", Label: "v00038", Kind: KindInt32},
	{Name: "CO2SensorCount", Label: "v00039", Kind: KindInt32},
	{Name: "VOCControl", Label: "v00040", Kind: KindSensorControl},
	{Name: "VOCSetpoint", Label: "v00041", Kind: KindInt32},
	{Name: "VOCSensorCount", Label: "v00042", Kind: KindInt32},
	{Name: "SensorLevelMax", Label: "v00043", Kind: KindVentilationLevel},
	{Name: "SensorLevelMin", Label: "v00044", Kind: KindVentilationLevel},

	// ── Heaters and frost protection ─────────────────────────
	{Name: "PreheaterType", Label: "v00050", Kind: KindPreheaterType},
	{Name: "PreheaterEnabled", Label: "v00051", Kind: KindBool},
	{Name: "PreheaterSetpoint", Label: "v00052", Kind: KindFloat64},
	{Name: "PreheaterOutput", Label: "v00053", Kind: KindInt32},
	{Name: "PreheaterRuntime", Label: "v00054", Kind: KindInt32},
	{Name: "AfterheaterType", Label: "v00055", Kind: KindAfterheaterType},
	{Name: "AfterheaterEnabled", Label: "v00056", Kind: KindBool},
	{Name: "AfterheaterSetpoint", Label: "v00057", Kind: KindFloat64},
	{Name: "AfterheaterOutput", Label: "v00058", Kind: KindInt32},
	{Name: "AfterheaterRuntime", Label: "v00059", Kind: KindInt32},
	{Name: "FrostProtectionMode", Label: "v00060", Kind: KindFrostProtectionMode},
	{Name: "FrostProtectionThreshold", Label: "v00061", Kind: KindFloat64},
	{Name: "FrostProtectionHysteresis", Label: "v00062", Kind: KindFloat64},
	{Name: "FrostProtectionActive", Label: "v00063", Kind: KindBool},
	{Name: "HeatExchangerFrostThreshold", Label: "v00064", Kind: KindFloat64},

	// ── Bypass and season ────────────────────────────────────
	{Name: "BypassState", Label: "v00080", Kind: KindBypassState},
	{Name: "BypassOpenTemperature", Label: "v00081", Kind: KindFloat64},
	{Name: "BypassMinOutdoorTemperature", Label: "v00082", Kind: KindFloat64},
	{Name: "BypassSummerOnly", Label: "v00083", Kind: KindBool},
	{Name: "Season", Label: "v00084", Kind: KindSeason},
	{Name: "SeasonChangeoverTemperature", Label: "v00085", Kind: KindFloat64},

	// ── Booster and standby ──────────────────────────────────
	{Name: "BoosterDefaultDuration", Label: "v00090", Kind: KindInt32},
	{Name: "BoosterDuration", Label: "v00091", Kind: KindInt32},
	{Name: "BoosterLevel", Label: "v00092", Kind: KindVentilationLevel},
	{Name: "BoosterRemaining", Label: "v00093", Kind: KindInt32},
	{Name: "BoosterActive", Label: "v00094", Kind: KindBool},
	{Name: "StandbyDuration", Label: "v00096", Kind: KindInt32},
	{Name: "StandbyLevel", Label: "v00097", Kind: KindVentilationLevel},
	{Name: "StandbyRemaining", Label: "v00098", Kind: KindInt32},
	{Name: "StandbyActive", Label: "v00099", Kind: KindBool},

	// ── Operation and measurements ───────────────────────────
	{Name: "OperationMode", Label: "v00101", Kind: KindOperationMode},
	{Name: "VentilationLevel", Label: "v00102", Kind: KindVentilationLevel},
	{Name: "VentilationPercent", Label: "v00103", Kind: KindInt32},
	{Name: "TemperatureOutdoor", Label: "v00104", Kind: KindFloat64},
	{Name: "TemperatureSupply", Label: "v00105", Kind: KindFloat64},
	{Name: "TemperatureExtract", Label: "v00106", Kind: KindFloat64},
	{Name: "TemperatureExhaust", Label: "v00107", Kind: KindFloat64},
	{Name: "TemperaturePreheater", Label: "v00108", Kind: KindFloat64},
	{Name: "TemperatureAfterheater", Label: "v00109", Kind: KindFloat64},
	{Name: "TemperatureRoom", Label: "v00110", Kind: KindFloat64},
	{Name: "HumidityExtract", Label: "v00111", Kind: KindFloat64},
	{Name: "HumidityOutdoor", Label: "v00112", Kind: KindFloat64},
	{Name: "CO2Level", Label: "v00113", Kind: KindInt32},
	{Name: "VOCLevel", Label: "v00114", Kind: KindInt32},
	{Name: "AirQualityIndex", Label: "v00115", Kind: KindInt32},
	{Name: "HeatRecoveryEfficiency", Label: "v00116", Kind: KindFloat64},
	{Name: "HeatRecoveryPower", Label: "v00117", Kind: KindFloat64},
	{Name: "PowerConsumption", Label: "v00118", Kind: KindFloat64},
	{Name: "EnergySaved", Label: "v00119", Kind: KindFloat64},
	{Name: "EnergyConsumed", Label: "v00120", Kind: KindFloat64},

	// ── Fans ─────────────────────────────────────────────────
	{Name: "MinimumLevel", Label: "v00201", Kind: KindVentilationLevel},
	{Name: "SupplyAirflowLevel1", Label: "v00210", Kind: KindInt32},
	{Name: "SupplyAirflowLevel2", Label: "v00211", Kind: KindInt32},
	{Name: "SupplyAirflowLevel3", Label: "v00212", Kind: KindInt32},
	{Name: "SupplyAirflowLevel4", Label: "v00213", Kind: KindInt32},
	{Name: "ExtractAirflowLevel1", Label: "v00214", Kind: KindInt32},
	{Name: "ExtractAirflowLevel2", Label: "v00215", Kind: KindInt32},
	{Name: "ExtractAirflowLevel3", Label: "v00216", Kind: KindInt32},
	{Name: "ExtractAirflowLevel4", Label: "v00217", Kind: KindInt32},
	{Name: "SupplyFanSpeed", Label: "v00220", Kind: KindInt32},
	{Name: "ExtractFanSpeed", Label: "v00221", Kind: KindInt32},
	{Name: "SupplyFanPercent", Label: "v00222", Kind: KindFloat64},
	{Name: "ExtractFanPercent", Label: "v00223", Kind: KindFloat64},
	{Name: "SupplyAirflow", Label: "v00224", Kind: KindInt32},
	{Name: "ExtractAirflow", Label: "v00225", Kind: KindInt32},
	{Name: "FanControlMode", Label: "v00226", Kind: KindFanControlMode},
	{Name: "FanImbalance", Label: "v00227", Kind: KindInt32},
	{Name: "SupplyFanRuntime", Label: "v00228", Kind: KindInt32},
	{Name: "ExtractFanRuntime", Label: "v00229", Kind: KindInt32},
	{Name: "FanStopEnabled", Label: "v00230", Kind: KindBool},
	{Name: "FanStartupDelay", Label: "v00231", Kind: KindInt32},

	// ── Vacation ─────────────────────────────────────────────
	{Name: "VacationMode", Label: "v00601", Kind: KindVacationMode},
	{Name: "VacationLevel", Label: "v00602", Kind: KindVentilationLevel},
	{Name: "VacationStart", Label: "v00603", Kind: KindDate},
	{Name: "VacationEnd", Label: "v00604", Kind: KindDate},
	{Name: "VacationInterval", Label: "v00605", Kind: KindInt32},
	{Name: "VacationActivePeriod", Label: "v00606", Kind: KindInt32},
	{Name: "VacationActive", Label: "v00607", Kind: KindBool},

	// ── Filter ───────────────────────────────────────────────
	{Name: "FilterChangeInterval", Label: "v01031", Kind: KindInt32},
	{Name: "FilterRemainingDays", Label: "v01032", Kind: KindInt32},
	{Name: "FilterState", Label: "v01033", Kind: KindFilterState},
	{Name: "FilterLastChanged", Label: "v01034", Kind: KindDate},
	{Name: "FilterPressureSupply", Label: "v01035", Kind: KindFloat64},
	{Name: "FilterPressureExtract", Label: "v01036", Kind: KindFloat64},
	{Name: "FilterResetRequested", Label: "v01037", Kind: KindBool},
	{Name: "FilterChangeCount", Label: "v01038", Kind: KindInt32},

	// ── Firmware ─────────────────────────────────────────────
	{Name: "FirmwareVersion", Label: "v01101", Kind: KindString},
	{Name: "BootloaderVersion", Label: "v01102", Kind: KindString},
	{Name: "WebVersion", Label: "v01103", Kind: KindString},
	{Name: "ControllerVersion", Label: "v01104", Kind: KindString},
	{Name: "OperatingHours", Label: "v01105", Kind: KindInt32},
	{Name: "PowerOnCount", Label: "v01106", Kind: KindInt32},
	{Name: "LastBootDate", Label: "v01107", Kind: KindDate},
	{Name: "LastBootTime", Label: "v01108", Kind: KindTimeOfDay},
	{Name: "Uptime", Label: "v01109", Kind: KindInt32},

	// ── Week program ─────────────────────────────────────────
	{Name: "WeekProgram", Label: "v01200", Kind: KindWeekProgram},
	{Name: "WeekProgramActive", Label: "v01201", Kind: KindBool},
	{Name: "ProgramStartMonday", Label: "v01210", Kind: KindTimeOfDay},
	{Name: "ProgramStartTuesday", Label: "v01211", Kind: KindTimeOfDay},
	{Name: "ProgramStartWednesday", Label: "v01212", Kind: KindTimeOfDay},
	{Name: "ProgramStartThursday", Label: "v01213", Kind: KindTimeOfDay},
	{Name: "ProgramStartFriday", Label: "v01214", Kind: KindTimeOfDay},
	{Name: "ProgramStartSaturday", Label: "v01215", Kind: KindTimeOfDay},
	{Name: "ProgramStartSunday", Label: "v01216", Kind: KindTimeOfDay},
	{Name: "ProgramEndMonday", Label: "v01220", Kind: KindTimeOfDay},
	{Name: "ProgramEndTuesday", Label: "v01221", Kind: KindTimeOfDay},
	{Name: "ProgramEndWednesday", Label: "v01222", Kind: KindTimeOfDay},
	{Name: "ProgramEndThursday", Label: "v01223", Kind: KindTimeOfDay},
	{Name: "ProgramEndFriday", Label: "v01224", Kind: KindTimeOfDay},
	{Name: "ProgramEndSaturday", Label: "v01225", Kind: KindTimeOfDay},
	{Name: "ProgramEndSunday", Label: "v01226", Kind: KindTimeOfDay},
	{Name: "ProgramDayLevel", Label: "v01227", Kind: KindVentilationLevel},
	{Name: "ProgramNightLevel", Label: "v01228", Kind: KindVentilationLevel},

	// ── Faults ───────────────────────────────────────────────
	{Name: "ErrorState", Label: "v01300", Kind: KindErrorState},
	{Name: "ErrorCode", Label: "v01301", Kind: KindInt32},
	{Name: "ErrorText", Label: "v01302", Kind: KindString},
	{Name: "WarningCode", Label: "v01303", Kind: KindInt32},
	{Name: "WarningText", Label: "v01304", Kind: KindString},
	{Name: "InfoCode", Label: "v01305", Kind: KindInt32},
	{Name: "InfoText", Label: "v01306", Kind: KindString},
	{Name: "ErrorCount", Label: "v01307", Kind: KindInt32},
	{Name: "LastErrorDate", Label: "v01308", Kind: KindDate},
	{Name: "LastErrorTime", Label: "v01309", Kind: KindTimeOfDay},
	{Name: "SensorFaultOutdoor", Label: "v01310", Kind: KindBool},
	{Name: "SensorFaultSupply", Label: "v01311", Kind: KindBool},
	{Name: "SensorFaultExtract", Label: "v01312", Kind: KindBool},
	{Name: "SensorFaultExhaust", Label: "v01313", Kind: KindBool},
	{Name: "SupplyFanFault", Label: "v01314", Kind: KindBool},
	{Name: "ExtractFanFault", Label: "v01315", Kind: KindBool},
	{Name: "PreheaterFault", Label: "v01316", Kind: KindBool},
	{Name: "AfterheaterFault", Label: "v01317", Kind: KindBool},
	{Name: "BypassFault", Label: "v01318", Kind: KindBool},
	{Name: "CommunicationFault", Label: "v01319", Kind: KindBool},
	{Name: "FrostAlarm", Label: "v01320", Kind: KindBool},
	{Name: "FilterAlarm", Label: "v01321", Kind: KindBool},
	{Name: "StatusFlags", Label: "v01322", Kind: KindInt32},
	{Name: "LastErrorCode", Label: "v01323", Kind: KindInt32},

	// ── Control panel ────────────────────────────────────────
	{Name: "DisplayBrightness", Label: "v02101", Kind: KindInt32},
	{Name: "DisplayTimeout", Label: "v02102", Kind: KindInt32},
	{Name: "DisplayLocked", Label: "v02103", Kind: KindBool},
	{Name: "DisplayPinEnabled", Label: "v02104", Kind: KindBool},
	{Name: "KeySoundEnabled", Label: "v02105", Kind: KindBool},
	{Name: "DisplayContrast", Label: "v02106", Kind: KindInt32},
	{Name: "ScreenSaverEnabled", Label: "v02107", Kind: KindBool},
	{Name: "DisplayStartPage", Label: "v02108", Kind: KindInt32},

	// ── Night cooling ────────────────────────────────────────
	{Name: "NightCoolingEnabled", Label: "v02201", Kind: KindBool},
	{Name: "NightCoolingStart", Label: "v02202", Kind: KindTimeOfDay},
	{Name: "NightCoolingEnd", Label: "v02203", Kind: KindTimeOfDay},
	{Name: "NightCoolingMinTemperature", Label: "v02204", Kind: KindFloat64},
	{Name: "NightCoolingLevel", Label: "v02205", Kind: KindVentilationLevel},
	{Name: "SupplyTemperatureSetpoint", Label: "v02206", Kind: KindFloat64},
	{Name: "RoomTemperatureSetpoint", Label: "v02207", Kind: KindFloat64},
	{Name: "CoolingRecoveryEnabled", Label: "v02208", Kind: KindBool},

	// ── Ground heat exchanger ────────────────────────────────
	{Name: "GroundExchangerEnabled", Label: "v02301", Kind: KindBool},
	{Name: "GroundExchangerMinTemperature", Label: "v02302", Kind: KindFloat64},
	{Name: "GroundExchangerMaxTemperature", Label: "v02303", Kind: KindFloat64},
	{Name: "GroundExchangerActive", Label: "v02304", Kind: KindBool},
	{Name: "TemperatureGroundExchanger", Label: "v02305", Kind: KindFloat64},

	// ── Statistics ───────────────────────────────────────────
	{Name: "DailyRuntime", Label: "v03001", Kind: KindInt32},
	{Name: "RuntimeLevel0", Label: "v03002", Kind: KindInt32},
	{Name: "RuntimeLevel1", Label: "v03003", Kind: KindInt32},
	{Name: "RuntimeLevel2", Label: "v03004", Kind: KindInt32},
	{Name: "RuntimeLevel3", Label: "v03005", Kind: KindInt32},
	{Name: "RuntimeLevel4", Label: "v03006", Kind: KindInt32},
	{Name: "BoosterActivations", Label: "v03007", Kind: KindInt32},
	{Name: "StandbyActivations", Label: "v03008", Kind: KindInt32},
	{Name: "AverageSupplyTemperature", Label: "v03009", Kind: KindFloat64},
	{Name: "AverageExtractTemperature", Label: "v03010", Kind: KindFloat64},
	{Name: "AverageOutdoorTemperature", Label: "v03011", Kind: KindFloat64},
	{Name: "AverageHumidity", Label: "v03012", Kind: KindFloat64},
	{Name: "AverageCO2", Label: "v03013", Kind: KindInt32},
	{Name: "StatisticsResetDate", Label: "v03014", Kind: KindDate},

	// ── Service ──────────────────────────────────────────────
	{Name: "ServiceInterval", Label: "v04001", Kind: KindInt32},
	{Name: "ServiceDue", Label: "v04002", Kind: KindBool},
	{Name: "LastServiceDate", Label: "v04003", Kind: KindDate},
	{Name: "NextServiceDate", Label: "v04004", Kind: KindDate},
	{Name: "ServiceContact", Label: "v04005", Kind: KindString},
	{Name: "ServicePhone", Label: "v04006", Kind: KindString},
	{Name: "InstallerName", Label: "v04007", Kind: KindString},
	{Name: "CommissioningDate", Label: "v04008", Kind: KindDate},
}

var (
	byName  map[string]int
	byLabel map[string]int
)

func init() {
	byName = make(map[string]int, len(descriptors))
	byLabel = make(map[string]int, len(descriptors))

	for i, d := range descriptors {
		if !validLabel(d.Label) {
			panic(fmt.Sprintf("parameter: malformed label %q for %s", d.Label, d.Name))
		}
		if _, dup := byName[d.Name]; dup {
			panic("parameter: duplicate name " + d.Name)
		}
		if _, dup := byLabel[d.Label]; dup {
			panic("parameter: duplicate label " + d.Label)
		}
		byName[d.Name] = i
		byLabel[d.Label] = i
	}
}

// labelDigits is the number of digits after the "v" prefix.
const labelDigits = 5

func validLabel(label string) bool {
	if len(label) != labelDigits+1 || label[0] != 'v' {
		return false
	}
	for _, c := range label[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// All returns every descriptor in declaration order. The slice is a copy;
// callers may keep or modify it.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Len returns the number of descriptors.
func Len() int {
	return len(descriptors)
}

// LookupByName returns the descriptor with the given canonical name.
func LookupByName(name string) (Descriptor, bool) {
	i, ok := byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return descriptors[i], true
}

// LookupByLabel returns the descriptor with the given protocol label.
func LookupByLabel(label string) (Descriptor, bool) {
	i, ok := byLabel[label]
	if !ok {
		return Descriptor{}, false
	}
	return descriptors[i], true
}

// IsName reports whether name is a canonical parameter name.
func IsName(name string) bool {
	_, ok := byName[name]
	return ok
}

// IsLabel reports whether label is a known protocol label.
func IsLabel(label string) bool {
	_, ok := byLabel[label]
	return ok
}
