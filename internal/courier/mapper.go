package courier

import "strings"

// Stage reports which rule resolved a courier code.
type Stage string

const (
	StageTable       Stage = "table"
	StageVocabulary  Stage = "vocabulary"
	StagePassthrough Stage = "passthrough"
)

func (s Stage) String() string { return string(s) }

// courierTable is built once and never written to after init.
var courierTable = map[OrderCourier]string{
	OrderCourierInPost:     NotificationInPost.Value,
	OrderCourierPoczta:     NotificationPocztaPolska.Value,
	OrderCourierPekaes:     NotificationPallex.Value,
	OrderCourierAllegro:    NotificationAllegroShipping.Value,
	OrderCourierDPD:        NotificationDPD.Value,
	OrderCourierUPS:        NotificationUPS.Value,
	OrderCourierDHL:        NotificationDHL.Value,
	OrderCourierGLS:        NotificationGLS.Value,
	OrderCourierFedEx:      NotificationFedEx.Value,
	OrderCourierPWR:        NotificationCourierManager.Value,
	OrderCourierHellmann:   NotificationHellmann.Value,
	OrderCourierRaben:      NotificationRaben.Value,
	OrderCourierKEX:        NotificationCourierCenter.Value,
	OrderCourierAmbro:      NotificationCourierCenter.Value,
	OrderCourierRhenus:     NotificationRhenus.Value,
	OrderCourierWawaKurier: NotificationWeDo.Value,
	OrderCourierDHLParcel:  NotificationDHLParcel.Value,
	OrderCourierITaxi:      NotificationCourierCenter.Value,
	OrderCourierTNT:        NotificationTNT.Value,
	OrderCourierGeis:       NotificationGeis.Value,
	OrderCourierLinehaul:   NotificationLog4World.Value,
	OrderCourierSuus:       NotificationRohligSUUS.Value,
	OrderCourierMaterialy:  NotificationPackageez.Value,
	OrderCourierPallex:     NotificationPallex.Value,
	OrderCourierZasilkovna: NotificationZadbano.Value,
	OrderCourierMeest:      NotificationMeest.Value,
	OrderCourierKuehne:     NotificationKuehneNagel.Value,
	OrderCourierOneKurier:  NotificationCourierCenter.Value,
}

// Resolve maps an order-service courier code to the notification service
// vocabulary. Lookup order: the static table (case-insensitive), then the
// notification vocabulary by value or name (case-insensitive), then the
// input unchanged.
func Resolve(code string) (string, Stage) {
	if c := OrderCourier(strings.ToUpper(code)); c.IsValid() {
		return courierTable[c], StageTable
	}

	for _, c := range notificationCouriers {
		if strings.EqualFold(c.Value, code) || strings.EqualFold(c.Name, code) {
			return c.Value, StageVocabulary
		}
	}

	return code, StagePassthrough
}

// MapFromString never fails; unknown codes are returned as given.
func MapFromString(code string) string {
	mapped, _ := Resolve(code)
	return mapped
}

// MapSupplier is MapFromString for an optional supplier. An empty supplier
// means no courier is known and yields ok=false.
func MapSupplier[T ~string](supplier T) (string, bool) {
	if supplier == "" {
		return "", false
	}
	return MapFromString(string(supplier)), true
}
