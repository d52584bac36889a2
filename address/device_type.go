package address

// DeviceType classifies a device by its two-digit address prefix. The
// prefix-to-type table is not published by the wire protocol itself; this
// mapping follows the commonly observed RAMSES-II device classes.
type DeviceType string

const (
	TypeUnknown DeviceType = ""
	TypeCTL     DeviceType = "CTL" // controller
	TypeUFC     DeviceType = "UFC" // underfloor heating controller
	TypeTHM     DeviceType = "THM" // thermostat
	TypeTRV     DeviceType = "TRV" // radiator valve
	TypeDHW     DeviceType = "DHW" // hot water sensor
	TypeOTB     DeviceType = "OTB" // OpenTherm bridge
	TypeBDR     DeviceType = "BDR" // relay
	TypeOUT     DeviceType = "OUT" // outdoor sensor
	TypeHGI     DeviceType = "HGI" // gateway interface (this device)
	TypeRFG     DeviceType = "RFG" // internet gateway
	TypeFAN     DeviceType = "FAN" // ventilation fan
	TypeRFS     DeviceType = "RFS" // ventilation remote sensor
	TypeCO2     DeviceType = "CO2" // CO2 sensor
	TypeHUM     DeviceType = "HUM" // humidity sensor
	TypeREM     DeviceType = "REM" // remote control switch
	TypeDIS     DeviceType = "DIS" // wireless display thermostat
	TypePRG     DeviceType = "PRG" // programmer
	TypeDTS     DeviceType = "DTS" // ventilation display/timer switch
	TypeDT2     DeviceType = "DT2" // ventilation display/timer switch (v2)
)

var typeByPrefix = map[string]DeviceType{
	"01": TypeCTL,
	"02": TypeUFC,
	"03": TypeTHM,
	"04": TypeTRV,
	"07": TypeDHW,
	"10": TypeOTB,
	"12": TypeTHM,
	"13": TypeBDR,
	"17": TypeOUT,
	"18": TypeHGI,
	"20": TypeFAN,
	"22": TypeREM,
	"23": TypePRG,
	"30": TypeRFG,
	"31": TypeRFS,
	"32": TypeCO2,
	"33": TypeHUM,
	"34": TypeDIS,
	"37": TypeDTS,
	"39": TypeDT2,
}

// IsController reports whether the address belongs to a device class that
// can legitimately originate controller-only broadcasts: CTL, UFC or PRG.
func (a Address) IsController() bool {
	switch a.Type() {
	case TypeCTL, TypeUFC, TypePRG:
		return true
	}
	return false
}
