// Package record holds the canonical, strongly typed image of the
// ventilation unit's parameters and the copy-on-write store that publishes
// it to concurrent readers.
package record

import (
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// Record has one typed field per registered parameter, named by the
// parameter's canonical name. A new Record holds zero values everywhere;
// fields change only when a frame carries a parseable value for them.
//
// Record contains no pointers, slices or maps, so a plain struct copy is a
// deep copy.
type Record struct {
	// Identity
	ProductName             string
	ReferenceNumber         string
	MacAddress              string
	Language                string
	SystemDate              parameter.Date
	SystemTime              parameter.TimeOfDay
	DaylightSaving          parameter.DaylightSaving
	TimeSync                bool
	TimeZoneOffset          int32
	DateFormat              parameter.DateFormat
	HeatExchangerType       parameter.HeatExchangerType
	TemperatureUnit         parameter.TemperatureUnit
	Orientation             parameter.Orientation
	ExternalContactFunction parameter.ExternalContactFunction
	ExternalContactDuration int32
	HardwareVersion         string
	SerialNumber            string
	NominalAirflow          int32
	DeviceModel             string
	ProductionDate          parameter.Date

	// Network
	NetworkMode    parameter.NetworkMode
	IPAddress      string
	SubnetMask     string
	DefaultGateway string
	DNSServer      string
	HostName       string
	RemoteAccess   bool
	WebPort        int32
	NTPServer      string

	// Sensor control
	SensorControlDelay  int32
	HumidityControl     parameter.SensorControl
	HumiditySetpoint    int32
	HumiditySensorCount int32
	HumidityHysteresis  int32
	CO2Control          parameter.SensorControl
	CO2Setpoint         int32
	CO2SensorCount      int32
	VOCControl          parameter.SensorControl
	VOCSetpoint         int32
	VOCSensorCount      int32
	SensorLevelMax      parameter.VentilationLevel
	SensorLevelMin      parameter.VentilationLevel

	// Heaters and frost protection
	PreheaterType               parameter.PreheaterType
	PreheaterEnabled            bool
	PreheaterSetpoint           float64
	PreheaterOutput             int32
	PreheaterRuntime            int32
	AfterheaterType             parameter.AfterheaterType
	AfterheaterEnabled          bool
	AfterheaterSetpoint         float64
	AfterheaterOutput           int32
	AfterheaterRuntime          int32
	FrostProtectionMode         parameter.FrostProtectionMode
	FrostProtectionThreshold    float64
	FrostProtectionHysteresis   float64
	FrostProtectionActive       bool
	HeatExchangerFrostThreshold float64

	// Bypass and season
	BypassState                 parameter.BypassState
	BypassOpenTemperature       float64
	BypassMinOutdoorTemperature float64
	BypassSummerOnly            bool
	Season                      parameter.Season
	SeasonChangeoverTemperature float64

	// Booster and standby
	BoosterDefaultDuration int32
	BoosterDuration        int32
	BoosterLevel           parameter.VentilationLevel
	BoosterRemaining       int32
	BoosterActive          bool
	StandbyDuration        int32
	StandbyLevel           parameter.VentilationLevel
	StandbyRemaining       int32
	StandbyActive          bool

	// Operation and measurements
	OperationMode          parameter.OperationMode
	VentilationLevel       parameter.VentilationLevel
	VentilationPercent     int32
	TemperatureOutdoor     float64
	TemperatureSupply      float64
	TemperatureExtract     float64
	TemperatureExhaust     float64
	TemperaturePreheater   float64
	TemperatureAfterheater float64
	TemperatureRoom        float64
	HumidityExtract        float64
	HumidityOutdoor        float64
	CO2Level               int32
	VOCLevel               int32
	AirQualityIndex        int32
	HeatRecoveryEfficiency float64
	HeatRecoveryPower      float64
	PowerConsumption       float64
	EnergySaved            float64
	EnergyConsumed         float64

	// Fans
	MinimumLevel         parameter.VentilationLevel
	SupplyAirflowLevel1  int32
	SupplyAirflowLevel2  int32
	SupplyAirflowLevel3  int32
	SupplyAirflowLevel4  int32
	ExtractAirflowLevel1 int32
	ExtractAirflowLevel2 int32
	ExtractAirflowLevel3 int32
	ExtractAirflowLevel4 int32
	SupplyFanSpeed       int32
	ExtractFanSpeed      int32
	SupplyFanPercent     float64
	ExtractFanPercent    float64
	SupplyAirflow        int32
	ExtractAirflow       int32
	FanControlMode       parameter.FanControlMode
	FanImbalance         int32
	SupplyFanRuntime     int32
	ExtractFanRuntime    int32
	FanStopEnabled       bool
	FanStartupDelay      int32

	// Vacation
	VacationMode         parameter.VacationMode
	VacationLevel        parameter.VentilationLevel
	VacationStart        parameter.Date
	VacationEnd          parameter.Date
	VacationInterval     int32
	VacationActivePeriod int32
	VacationActive       bool

	// Filter
	FilterChangeInterval  int32
	FilterRemainingDays   int32
	FilterState           parameter.FilterState
	FilterLastChanged     parameter.Date
	FilterPressureSupply  float64
	FilterPressureExtract float64
	FilterResetRequested  bool
	FilterChangeCount     int32

	// Firmware
	FirmwareVersion   string
	BootloaderVersion string
	WebVersion        string
	ControllerVersion string
	OperatingHours    int32
	PowerOnCount      int32
	LastBootDate      parameter.Date
	LastBootTime      parameter.TimeOfDay
	Uptime            int32

	// Week program
	WeekProgram           parameter.WeekProgram
	WeekProgramActive     bool
	ProgramStartMonday    parameter.TimeOfDay
	ProgramStartTuesday   parameter.TimeOfDay
	ProgramStartWednesday parameter.TimeOfDay
	ProgramStartThursday  parameter.TimeOfDay
	ProgramStartFriday    parameter.TimeOfDay
	ProgramStartSaturday  parameter.TimeOfDay
	ProgramStartSunday    parameter.TimeOfDay
	ProgramEndMonday      parameter.TimeOfDay
	ProgramEndTuesday     parameter.TimeOfDay
	ProgramEndWednesday   parameter.TimeOfDay
	ProgramEndThursday    parameter.TimeOfDay
	ProgramEndFriday      parameter.TimeOfDay
	ProgramEndSaturday    parameter.TimeOfDay
	ProgramEndSunday      parameter.TimeOfDay
	ProgramDayLevel       parameter.VentilationLevel
	ProgramNightLevel     parameter.VentilationLevel

	// Faults
	ErrorState         parameter.ErrorState
	ErrorCode          int32
	ErrorText          string
	WarningCode        int32
	WarningText        string
	InfoCode           int32
	InfoText           string
	ErrorCount         int32
	LastErrorDate      parameter.Date
	LastErrorTime      parameter.TimeOfDay
	SensorFaultOutdoor bool
	SensorFaultSupply  bool
	SensorFaultExtract bool
	SensorFaultExhaust bool
	SupplyFanFault     bool
	ExtractFanFault    bool
	PreheaterFault     bool
	AfterheaterFault   bool
	BypassFault        bool
	CommunicationFault bool
	FrostAlarm         bool
	FilterAlarm        bool
	StatusFlags        int32
	LastErrorCode      int32

	// Control panel
	DisplayBrightness  int32
	DisplayTimeout     int32
	DisplayLocked      bool
	DisplayPinEnabled  bool
	KeySoundEnabled    bool
	DisplayContrast    int32
	ScreenSaverEnabled bool
	DisplayStartPage   int32

	// Night cooling
	NightCoolingEnabled        bool
	NightCoolingStart          parameter.TimeOfDay
	NightCoolingEnd            parameter.TimeOfDay
	NightCoolingMinTemperature float64
	NightCoolingLevel          parameter.VentilationLevel
	SupplyTemperatureSetpoint  float64
	RoomTemperatureSetpoint    float64
	CoolingRecoveryEnabled     bool

	// Ground heat exchanger
	GroundExchangerEnabled        bool
	GroundExchangerMinTemperature float64
	GroundExchangerMaxTemperature float64
	GroundExchangerActive         bool
	TemperatureGroundExchanger    float64

	// Statistics
	DailyRuntime              int32
	RuntimeLevel0             int32
	RuntimeLevel1             int32
	RuntimeLevel2             int32
	RuntimeLevel3             int32
	RuntimeLevel4             int32
	BoosterActivations        int32
	StandbyActivations        int32
	AverageSupplyTemperature  float64
	AverageExtractTemperature float64
	AverageOutdoorTemperature float64
	AverageHumidity           float64
	AverageCO2                int32
	StatisticsResetDate       parameter.Date

	// Service
	ServiceInterval   int32
	ServiceDue        bool
	LastServiceDate   parameter.Date
	NextServiceDate   parameter.Date
	ServiceContact    string
	ServicePhone      string
	InstallerName     string
	CommissioningDate parameter.Date
}

// New returns a record with every field at its zero value.
func New() *Record {
	return &Record{}
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}
