package projection

import (
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
	"github.com/nerrad567/easycontrols-gateway/internal/record"
)

// OperationView is the main status panel: mode, level and the active special modes.
type OperationView struct {
	OperationMode      parameter.OperationMode
	VentilationLevel   parameter.VentilationLevel
	VentilationPercent int32
	BoosterActive      bool
	StandbyActive      bool
	VacationActive     bool
	Season             parameter.Season
	BypassState        parameter.BypassState
	ErrorState         parameter.ErrorState
	WeekProgram        parameter.WeekProgram
	WeekProgramActive  bool
}

// Refresh copies the view's fields from r.
func (v *OperationView) Refresh(r *record.Record) {
	v.OperationMode = r.OperationMode
	v.VentilationLevel = r.VentilationLevel
	v.VentilationPercent = r.VentilationPercent
	v.BoosterActive = r.BoosterActive
	v.StandbyActive = r.StandbyActive
	v.VacationActive = r.VacationActive
	v.Season = r.Season
	v.BypassState = r.BypassState
	v.ErrorState = r.ErrorState
	v.WeekProgram = r.WeekProgram
	v.WeekProgramActive = r.WeekProgramActive
}

// BoosterView covers the timed party/booster mode.
type BoosterView struct {
	BoosterActive           bool
	BoosterLevel            parameter.VentilationLevel
	BoosterDuration         int32
	BoosterRemaining        int32
	BoosterDefaultDuration  int32
	OperationMode           parameter.OperationMode
	VentilationLevel        parameter.VentilationLevel
	VentilationPercent      int32
	ExternalContactFunction parameter.ExternalContactFunction
}

// Refresh copies the view's fields from r.
func (v *BoosterView) Refresh(r *record.Record) {
	v.BoosterActive = r.BoosterActive
	v.BoosterLevel = r.BoosterLevel
	v.BoosterDuration = r.BoosterDuration
	v.BoosterRemaining = r.BoosterRemaining
	v.BoosterDefaultDuration = r.BoosterDefaultDuration
	v.OperationMode = r.OperationMode
	v.VentilationLevel = r.VentilationLevel
	v.VentilationPercent = r.VentilationPercent
	v.ExternalContactFunction = r.ExternalContactFunction
}

// StandbyView covers the timed standby (quiet) mode.
type StandbyView struct {
	StandbyActive    bool
	StandbyLevel     parameter.VentilationLevel
	StandbyDuration  int32
	StandbyRemaining int32
	OperationMode    parameter.OperationMode
	VentilationLevel parameter.VentilationLevel
}

// Refresh copies the view's fields from r.
func (v *StandbyView) Refresh(r *record.Record) {
	v.StandbyActive = r.StandbyActive
	v.StandbyLevel = r.StandbyLevel
	v.StandbyDuration = r.StandbyDuration
	v.StandbyRemaining = r.StandbyRemaining
	v.OperationMode = r.OperationMode
	v.VentilationLevel = r.VentilationLevel
}

// VacationView is the vacation page.
type VacationView struct {
	VacationMode         parameter.VacationMode
	VacationLevel        parameter.VentilationLevel
	VacationStart        parameter.Date
	VacationEnd          parameter.Date
	VacationInterval     int32
	VacationActivePeriod int32
	VacationActive       bool
}

// Refresh copies the view's fields from r.
func (v *VacationView) Refresh(r *record.Record) {
	v.VacationMode = r.VacationMode
	v.VacationLevel = r.VacationLevel
	v.VacationStart = r.VacationStart
	v.VacationEnd = r.VacationEnd
	v.VacationInterval = r.VacationInterval
	v.VacationActivePeriod = r.VacationActivePeriod
	v.VacationActive = r.VacationActive
}

// TemperatureView groups every temperature sensor and setpoint.
type TemperatureView struct {
	TemperatureOutdoor         float64
	TemperatureSupply          float64
	TemperatureExtract         float64
	TemperatureExhaust         float64
	TemperaturePreheater       float64
	TemperatureAfterheater     float64
	TemperatureRoom            float64
	TemperatureGroundExchanger float64
	TemperatureUnit            parameter.TemperatureUnit
	HeatRecoveryEfficiency     float64
	SupplyTemperatureSetpoint  float64
	RoomTemperatureSetpoint    float64
}

// Refresh copies the view's fields from r.
func (v *TemperatureView) Refresh(r *record.Record) {
	v.TemperatureOutdoor = r.TemperatureOutdoor
	v.TemperatureSupply = r.TemperatureSupply
	v.TemperatureExtract = r.TemperatureExtract
	v.TemperatureExhaust = r.TemperatureExhaust
	v.TemperaturePreheater = r.TemperaturePreheater
	v.TemperatureAfterheater = r.TemperatureAfterheater
	v.TemperatureRoom = r.TemperatureRoom
	v.TemperatureGroundExchanger = r.TemperatureGroundExchanger
	v.TemperatureUnit = r.TemperatureUnit
	v.HeatRecoveryEfficiency = r.HeatRecoveryEfficiency
	v.SupplyTemperatureSetpoint = r.SupplyTemperatureSetpoint
	v.RoomTemperatureSetpoint = r.RoomTemperatureSetpoint
}

// FanView is the fan page.
type FanView struct {
	FanControlMode       parameter.FanControlMode
	MinimumLevel         parameter.VentilationLevel
	SupplyFanSpeed       int32
	ExtractFanSpeed      int32
	SupplyFanPercent     float64
	ExtractFanPercent    float64
	SupplyAirflow        int32
	ExtractAirflow       int32
	FanImbalance         int32
	SupplyAirflowLevel1  int32
	SupplyAirflowLevel2  int32
	SupplyAirflowLevel3  int32
	SupplyAirflowLevel4  int32
	ExtractAirflowLevel1 int32
	ExtractAirflowLevel2 int32
	ExtractAirflowLevel3 int32
	ExtractAirflowLevel4 int32
	SupplyFanFault       bool
	ExtractFanFault      bool
}

// Refresh copies the view's fields from r.
func (v *FanView) Refresh(r *record.Record) {
	v.FanControlMode = r.FanControlMode
	v.MinimumLevel = r.MinimumLevel
	v.SupplyFanSpeed = r.SupplyFanSpeed
	v.ExtractFanSpeed = r.ExtractFanSpeed
	v.SupplyFanPercent = r.SupplyFanPercent
	v.ExtractFanPercent = r.ExtractFanPercent
	v.SupplyAirflow = r.SupplyAirflow
	v.ExtractAirflow = r.ExtractAirflow
	v.FanImbalance = r.FanImbalance
	v.SupplyAirflowLevel1 = r.SupplyAirflowLevel1
	v.SupplyAirflowLevel2 = r.SupplyAirflowLevel2
	v.SupplyAirflowLevel3 = r.SupplyAirflowLevel3
	v.SupplyAirflowLevel4 = r.SupplyAirflowLevel4
	v.ExtractAirflowLevel1 = r.ExtractAirflowLevel1
	v.ExtractAirflowLevel2 = r.ExtractAirflowLevel2
	v.ExtractAirflowLevel3 = r.ExtractAirflowLevel3
	v.ExtractAirflowLevel4 = r.ExtractAirflowLevel4
	v.SupplyFanFault = r.SupplyFanFault
	v.ExtractFanFault = r.ExtractFanFault
}

// FilterView is the filter page.
type FilterView struct {
	FilterChangeInterval  int32
	FilterRemainingDays   int32
	FilterState           parameter.FilterState
	FilterLastChanged     parameter.Date
	FilterPressureSupply  float64
	FilterPressureExtract float64
	FilterChangeCount     int32
	FilterAlarm           bool
}

// Refresh copies the view's fields from r.
func (v *FilterView) Refresh(r *record.Record) {
	v.FilterChangeInterval = r.FilterChangeInterval
	v.FilterRemainingDays = r.FilterRemainingDays
	v.FilterState = r.FilterState
	v.FilterLastChanged = r.FilterLastChanged
	v.FilterPressureSupply = r.FilterPressureSupply
	v.FilterPressureExtract = r.FilterPressureExtract
	v.FilterChangeCount = r.FilterChangeCount
	v.FilterAlarm = r.FilterAlarm
}

// AirQualityView holds humidity, CO2 and VOC control and readings.
type AirQualityView struct {
	HumidityControl  parameter.SensorControl
	HumiditySetpoint int32
	HumidityExtract  float64
	HumidityOutdoor  float64
	CO2Control       parameter.SensorControl
	CO2Setpoint      int32
	CO2Level         int32
	VOCControl       parameter.SensorControl
	VOCSetpoint      int32
	VOCLevel         int32
	AirQualityIndex  int32
	SensorLevelMin   parameter.VentilationLevel
	SensorLevelMax   parameter.VentilationLevel
}

// Refresh copies the view's fields from r.
func (v *AirQualityView) Refresh(r *record.Record) {
	v.HumidityControl = r.HumidityControl
	v.HumiditySetpoint = r.HumiditySetpoint
	v.HumidityExtract = r.HumidityExtract
	v.HumidityOutdoor = r.HumidityOutdoor
	v.CO2Control = r.CO2Control
	v.CO2Setpoint = r.CO2Setpoint
	v.CO2Level = r.CO2Level
	v.VOCControl = r.VOCControl
	v.VOCSetpoint = r.VOCSetpoint
	v.VOCLevel = r.VOCLevel
	v.AirQualityIndex = r.AirQualityIndex
	v.SensorLevelMin = r.SensorLevelMin
	v.SensorLevelMax = r.SensorLevelMax
}

// HeaterView is the heater page.
type HeaterView struct {
	PreheaterType            parameter.PreheaterType
	PreheaterEnabled         bool
	PreheaterSetpoint        float64
	PreheaterOutput          int32
	PreheaterRuntime         int32
	AfterheaterType          parameter.AfterheaterType
	AfterheaterEnabled       bool
	AfterheaterSetpoint      float64
	AfterheaterOutput        int32
	AfterheaterRuntime       int32
	FrostProtectionMode      parameter.FrostProtectionMode
	FrostProtectionThreshold float64
	FrostProtectionActive    bool
	PreheaterFault           bool
	AfterheaterFault         bool
}

// Refresh copies the view's fields from r.
func (v *HeaterView) Refresh(r *record.Record) {
	v.PreheaterType = r.PreheaterType
	v.PreheaterEnabled = r.PreheaterEnabled
	v.PreheaterSetpoint = r.PreheaterSetpoint
	v.PreheaterOutput = r.PreheaterOutput
	v.PreheaterRuntime = r.PreheaterRuntime
	v.AfterheaterType = r.AfterheaterType
	v.AfterheaterEnabled = r.AfterheaterEnabled
	v.AfterheaterSetpoint = r.AfterheaterSetpoint
	v.AfterheaterOutput = r.AfterheaterOutput
	v.AfterheaterRuntime = r.AfterheaterRuntime
	v.FrostProtectionMode = r.FrostProtectionMode
	v.FrostProtectionThreshold = r.FrostProtectionThreshold
	v.FrostProtectionActive = r.FrostProtectionActive
	v.PreheaterFault = r.PreheaterFault
	v.AfterheaterFault = r.AfterheaterFault
}

// InfoView is the device identity page.
type InfoView struct {
	ProductName       string
	ReferenceNumber   string
	MacAddress        string
	SerialNumber      string
	DeviceModel       string
	HardwareVersion   string
	FirmwareVersion   string
	BootloaderVersion string
	WebVersion        string
	ControllerVersion string
	NominalAirflow    int32
	HeatExchangerType parameter.HeatExchangerType
	Orientation       parameter.Orientation
	ProductionDate    parameter.Date
	OperatingHours    int32
	Uptime            int32
	IPAddress         string
	HostName          string
}

// Refresh copies the view's fields from r.
func (v *InfoView) Refresh(r *record.Record) {
	v.ProductName = r.ProductName
	v.ReferenceNumber = r.ReferenceNumber
	v.MacAddress = r.MacAddress
	v.SerialNumber = r.SerialNumber
	v.DeviceModel = r.DeviceModel
	v.HardwareVersion = r.HardwareVersion
	v.FirmwareVersion = r.FirmwareVersion
	v.BootloaderVersion = r.BootloaderVersion
	v.WebVersion = r.WebVersion
	v.ControllerVersion = r.ControllerVersion
	v.NominalAirflow = r.NominalAirflow
	v.HeatExchangerType = r.HeatExchangerType
	v.Orientation = r.Orientation
	v.ProductionDate = r.ProductionDate
	v.OperatingHours = r.OperatingHours
	v.Uptime = r.Uptime
	v.IPAddress = r.IPAddress
	v.HostName = r.HostName
}

// ClockView is the clock page.
type ClockView struct {
	SystemDate     parameter.Date
	SystemTime     parameter.TimeOfDay
	DateFormat     parameter.DateFormat
	DaylightSaving parameter.DaylightSaving
	TimeSync       bool
	TimeZoneOffset int32
	NTPServer      string
	Language       string
}

// Refresh copies the view's fields from r.
func (v *ClockView) Refresh(r *record.Record) {
	v.SystemDate = r.SystemDate
	v.SystemTime = r.SystemTime
	v.DateFormat = r.DateFormat
	v.DaylightSaving = r.DaylightSaving
	v.TimeSync = r.TimeSync
	v.TimeZoneOffset = r.TimeZoneOffset
	v.NTPServer = r.NTPServer
	v.Language = r.Language
}

// FaultView lists error, warning and info state plus the individual fault flags.
type FaultView struct {
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
}

// Refresh copies the view's fields from r.
func (v *FaultView) Refresh(r *record.Record) {
	v.ErrorState = r.ErrorState
	v.ErrorCode = r.ErrorCode
	v.ErrorText = r.ErrorText
	v.WarningCode = r.WarningCode
	v.WarningText = r.WarningText
	v.InfoCode = r.InfoCode
	v.InfoText = r.InfoText
	v.ErrorCount = r.ErrorCount
	v.LastErrorDate = r.LastErrorDate
	v.LastErrorTime = r.LastErrorTime
	v.SensorFaultOutdoor = r.SensorFaultOutdoor
	v.SensorFaultSupply = r.SensorFaultSupply
	v.SensorFaultExtract = r.SensorFaultExtract
	v.SensorFaultExhaust = r.SensorFaultExhaust
	v.SupplyFanFault = r.SupplyFanFault
	v.ExtractFanFault = r.ExtractFanFault
	v.PreheaterFault = r.PreheaterFault
	v.AfterheaterFault = r.AfterheaterFault
	v.BypassFault = r.BypassFault
	v.CommunicationFault = r.CommunicationFault
	v.FrostAlarm = r.FrostAlarm
	v.FilterAlarm = r.FilterAlarm
	v.StatusFlags = r.StatusFlags
}

// DisplayView carries everything the wall-mounted control panel renders.
type DisplayView struct {
	OperationMode              parameter.OperationMode
	VentilationLevel           parameter.VentilationLevel
	VentilationPercent         int32
	BoosterActive              bool
	StandbyActive              bool
	VacationActive             bool
	Season                     parameter.Season
	BypassState                parameter.BypassState
	ErrorState                 parameter.ErrorState
	WeekProgram                parameter.WeekProgram
	WeekProgramActive          bool
	BoosterLevel               parameter.VentilationLevel
	BoosterRemaining           int32
	StandbyRemaining           int32
	VacationEnd                parameter.Date
	TemperatureOutdoor         float64
	TemperatureSupply          float64
	TemperatureExtract         float64
	TemperatureExhaust         float64
	TemperaturePreheater       float64
	TemperatureAfterheater     float64
	TemperatureRoom            float64
	TemperatureGroundExchanger float64
	TemperatureUnit            parameter.TemperatureUnit
	HeatRecoveryEfficiency     float64
	SupplyTemperatureSetpoint  float64
	RoomTemperatureSetpoint    float64
	SupplyFanSpeed             int32
	ExtractFanSpeed            int32
	SupplyFanPercent           float64
	ExtractFanPercent          float64
	SupplyAirflow              int32
	ExtractAirflow             int32
	FanControlMode             parameter.FanControlMode
	MinimumLevel               parameter.VentilationLevel
	FilterChangeInterval       int32
	FilterRemainingDays        int32
	FilterState                parameter.FilterState
	FilterLastChanged          parameter.Date
	FilterPressureSupply       float64
	FilterPressureExtract      float64
	FilterChangeCount          int32
	FilterAlarm                bool
	HumidityControl            parameter.SensorControl
	HumiditySetpoint           int32
	HumidityExtract            float64
	HumidityOutdoor            float64
	CO2Control                 parameter.SensorControl
	CO2Setpoint                int32
	CO2Level                   int32
	VOCControl                 parameter.SensorControl
	VOCSetpoint                int32
	VOCLevel                   int32
	AirQualityIndex            int32
	SensorLevelMin             parameter.VentilationLevel
	SensorLevelMax             parameter.VentilationLevel
	PreheaterEnabled           bool
	PreheaterOutput            int32
	AfterheaterEnabled         bool
	AfterheaterOutput          int32
	FrostProtectionActive      bool
	SystemDate                 parameter.Date
	SystemTime                 parameter.TimeOfDay
	DateFormat                 parameter.DateFormat
	DaylightSaving             parameter.DaylightSaving
	TimeSync                   bool
	TimeZoneOffset             int32
	NTPServer                  string
	Language                   string
	ErrorCode                  int32
	ErrorText                  string
	WarningCode                int32
	WarningText                string
	InfoCode                   int32
	InfoText                   string
	DisplayBrightness          int32
	DisplayTimeout             int32
	DisplayLocked              bool
	DisplayPinEnabled          bool
	KeySoundEnabled            bool
	DisplayContrast            int32
	ScreenSaverEnabled         bool
	DisplayStartPage           int32
	NightCoolingEnabled        bool
	HeatRecoveryPower          float64
	PowerConsumption           float64
	ProductName                string
	FirmwareVersion            string
}

// Refresh copies the view's fields from r.
func (v *DisplayView) Refresh(r *record.Record) {
	v.OperationMode = r.OperationMode
	v.VentilationLevel = r.VentilationLevel
	v.VentilationPercent = r.VentilationPercent
	v.BoosterActive = r.BoosterActive
	v.StandbyActive = r.StandbyActive
	v.VacationActive = r.VacationActive
	v.Season = r.Season
	v.BypassState = r.BypassState
	v.ErrorState = r.ErrorState
	v.WeekProgram = r.WeekProgram
	v.WeekProgramActive = r.WeekProgramActive
	v.BoosterLevel = r.BoosterLevel
	v.BoosterRemaining = r.BoosterRemaining
	v.StandbyRemaining = r.StandbyRemaining
	v.VacationEnd = r.VacationEnd
	v.TemperatureOutdoor = r.TemperatureOutdoor
	v.TemperatureSupply = r.TemperatureSupply
	v.TemperatureExtract = r.TemperatureExtract
	v.TemperatureExhaust = r.TemperatureExhaust
	v.TemperaturePreheater = r.TemperaturePreheater
	v.TemperatureAfterheater = r.TemperatureAfterheater
	v.TemperatureRoom = r.TemperatureRoom
	v.TemperatureGroundExchanger = r.TemperatureGroundExchanger
	v.TemperatureUnit = r.TemperatureUnit
	v.HeatRecoveryEfficiency = r.HeatRecoveryEfficiency
	v.SupplyTemperatureSetpoint = r.SupplyTemperatureSetpoint
	v.RoomTemperatureSetpoint = r.RoomTemperatureSetpoint
	v.SupplyFanSpeed = r.SupplyFanSpeed
	v.ExtractFanSpeed = r.ExtractFanSpeed
	v.SupplyFanPercent = r.SupplyFanPercent
	v.ExtractFanPercent = r.ExtractFanPercent
	v.SupplyAirflow = r.SupplyAirflow
	v.ExtractAirflow = r.ExtractAirflow
	v.FanControlMode = r.FanControlMode
	v.MinimumLevel = r.MinimumLevel
	v.FilterChangeInterval = r.FilterChangeInterval
	v.FilterRemainingDays = r.FilterRemainingDays
	v.FilterState = r.FilterState
	v.FilterLastChanged = r.FilterLastChanged
	v.FilterPressureSupply = r.FilterPressureSupply
	v.FilterPressureExtract = r.FilterPressureExtract
	v.FilterChangeCount = r.FilterChangeCount
	v.FilterAlarm = r.FilterAlarm
	v.HumidityControl = r.HumidityControl
	v.HumiditySetpoint = r.HumiditySetpoint
	v.HumidityExtract = r.HumidityExtract
	v.HumidityOutdoor = r.HumidityOutdoor
	v.CO2Control = r.CO2Control
	v.CO2Setpoint = r.CO2Setpoint
	v.CO2Level = r.CO2Level
	v.VOCControl = r.VOCControl
	v.VOCSetpoint = r.VOCSetpoint
	v.VOCLevel = r.VOCLevel
	v.AirQualityIndex = r.AirQualityIndex
	v.SensorLevelMin = r.SensorLevelMin
	v.SensorLevelMax = r.SensorLevelMax
	v.PreheaterEnabled = r.PreheaterEnabled
	v.PreheaterOutput = r.PreheaterOutput
	v.AfterheaterEnabled = r.AfterheaterEnabled
	v.AfterheaterOutput = r.AfterheaterOutput
	v.FrostProtectionActive = r.FrostProtectionActive
	v.SystemDate = r.SystemDate
	v.SystemTime = r.SystemTime
	v.DateFormat = r.DateFormat
	v.DaylightSaving = r.DaylightSaving
	v.TimeSync = r.TimeSync
	v.TimeZoneOffset = r.TimeZoneOffset
	v.NTPServer = r.NTPServer
	v.Language = r.Language
	v.ErrorCode = r.ErrorCode
	v.ErrorText = r.ErrorText
	v.WarningCode = r.WarningCode
	v.WarningText = r.WarningText
	v.InfoCode = r.InfoCode
	v.InfoText = r.InfoText
	v.DisplayBrightness = r.DisplayBrightness
	v.DisplayTimeout = r.DisplayTimeout
	v.DisplayLocked = r.DisplayLocked
	v.DisplayPinEnabled = r.DisplayPinEnabled
	v.KeySoundEnabled = r.KeySoundEnabled
	v.DisplayContrast = r.DisplayContrast
	v.ScreenSaverEnabled = r.ScreenSaverEnabled
	v.DisplayStartPage = r.DisplayStartPage
	v.NightCoolingEnabled = r.NightCoolingEnabled
	v.HeatRecoveryPower = r.HeatRecoveryPower
	v.PowerConsumption = r.PowerConsumption
	v.ProductName = r.ProductName
	v.FirmwareVersion = r.FirmwareVersion
}
