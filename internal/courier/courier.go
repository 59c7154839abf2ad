package courier

// OrderCourier is a courier code as used by the order-management service.
type OrderCourier string

const (
	OrderCourierInPost     OrderCourier = "INPOST"
	OrderCourierPoczta     OrderCourier = "POCZTA"
	OrderCourierPekaes     OrderCourier = "PEKAES"
	OrderCourierAllegro    OrderCourier = "ALLEGRO"
	OrderCourierDPD        OrderCourier = "DPD"
	OrderCourierUPS        OrderCourier = "UPS"
	OrderCourierDHL        OrderCourier = "DHL"
	OrderCourierGLS        OrderCourier = "GLS"
	OrderCourierFedEx      OrderCourier = "FEDEX"
	OrderCourierPWR        OrderCourier = "PWR"
	OrderCourierHellmann   OrderCourier = "HELLMANN"
	OrderCourierRaben      OrderCourier = "RABEN"
	OrderCourierKEX        OrderCourier = "KEX"
	OrderCourierAmbro      OrderCourier = "AMBRO"
	OrderCourierRhenus     OrderCourier = "RHENUS"
	OrderCourierWawaKurier OrderCourier = "WAWAKURIER"
	OrderCourierDHLParcel  OrderCourier = "DHL_PARCEL"
	OrderCourierITaxi      OrderCourier = "ITAXI"
	OrderCourierTNT        OrderCourier = "TNT"
	OrderCourierGeis       OrderCourier = "GEIS"
	OrderCourierLinehaul   OrderCourier = "LINEHAUL"
	OrderCourierSuus       OrderCourier = "SUUS"
	OrderCourierMaterialy  OrderCourier = "MATERIALY"
	OrderCourierPallex     OrderCourier = "PALLEX"
	OrderCourierZasilkovna OrderCourier = "ZASILKOVNA"
	OrderCourierMeest      OrderCourier = "MEEST"
	OrderCourierKuehne     OrderCourier = "KUEHNE"
	OrderCourierOneKurier  OrderCourier = "ONE_KURIER"
)

func (c OrderCourier) String() string { return string(c) }

// IsValid reports whether c has an entry in the courier table.
func (c OrderCourier) IsValid() bool {
	_, ok := courierTable[c]
	return ok
}

// OrderCouriers returns every known order-service courier code.
func OrderCouriers() []OrderCourier {
	out := make([]OrderCourier, len(orderCouriers))
	copy(out, orderCouriers)
	return out
}

var orderCouriers = []OrderCourier{
	OrderCourierInPost, OrderCourierPoczta, OrderCourierPekaes, OrderCourierAllegro,
	OrderCourierDPD, OrderCourierUPS, OrderCourierDHL, OrderCourierGLS,
	OrderCourierFedEx, OrderCourierPWR, OrderCourierHellmann, OrderCourierRaben,
	OrderCourierKEX, OrderCourierAmbro, OrderCourierRhenus, OrderCourierWawaKurier,
	OrderCourierDHLParcel, OrderCourierITaxi, OrderCourierTNT, OrderCourierGeis,
	OrderCourierLinehaul, OrderCourierSuus, OrderCourierMaterialy, OrderCourierPallex,
	OrderCourierZasilkovna, OrderCourierMeest, OrderCourierKuehne, OrderCourierOneKurier,
}

// NotificationCourier is one case of the notification service's courier
// vocabulary. Either Name or Value may appear on the wire.
type NotificationCourier struct {
	Name  string
	Value string
}

var (
	NotificationInPost          = NotificationCourier{Name: "InPost", Value: "INPOST"}
	NotificationPocztaPolska    = NotificationCourier{Name: "PocztaPolska", Value: "POCZTA_POLSKA"}
	NotificationPallex          = NotificationCourier{Name: "Pallex", Value: "PALLEX"}
	NotificationAllegroShipping = NotificationCourier{Name: "AllegroShipping", Value: "ALLEGRO_SHIPPING"}
	NotificationDPD             = NotificationCourier{Name: "DPD", Value: "DPD"}
	NotificationUPS             = NotificationCourier{Name: "UPS", Value: "UPS"}
	NotificationDHL             = NotificationCourier{Name: "DHL", Value: "DHL"}
	NotificationGLS             = NotificationCourier{Name: "GLS", Value: "GLS"}
	NotificationFedEx           = NotificationCourier{Name: "FedEx", Value: "FEDEX"}
	NotificationCourierManager  = NotificationCourier{Name: "CourierManager", Value: "COURIER_MANAGER"}
	NotificationHellmann        = NotificationCourier{Name: "Hellmann", Value: "HELLMANN"}
	NotificationRaben           = NotificationCourier{Name: "Raben", Value: "RABEN"}
	NotificationCourierCenter   = NotificationCourier{Name: "CourierCenter", Value: "COURIER_CENTER"}
	NotificationRhenus          = NotificationCourier{Name: "Rhenus", Value: "RHENUS"}
	NotificationWeDo            = NotificationCourier{Name: "WeDo", Value: "WEDO"}
	NotificationDHLParcel       = NotificationCourier{Name: "DHL_Parcel", Value: "DHL_PARCEL"}
	NotificationTNT             = NotificationCourier{Name: "TNT", Value: "TNT"}
	NotificationGeis            = NotificationCourier{Name: "GEIS", Value: "GEIS"}
	NotificationLog4World       = NotificationCourier{Name: "Log4World", Value: "LOG4WORLD"}
	NotificationRohligSUUS      = NotificationCourier{Name: "RohligSUUS", Value: "ROHLIG_SUUS"}
	NotificationPackageez       = NotificationCourier{Name: "Packageez", Value: "PACKAGEEZ"}
	NotificationZadbano         = NotificationCourier{Name: "Zadbano", Value: "ZADBANO"}
	NotificationMeest           = NotificationCourier{Name: "Meest", Value: "MEEST"}
	NotificationKuehneNagel     = NotificationCourier{Name: "KuehneNagel", Value: "KUEHNE_NAGEL"}
	NotificationOrlenPaczka     = NotificationCourier{Name: "OrlenPaczka", Value: "ORLEN_PACZKA"}
	NotificationGeodis          = NotificationCourier{Name: "Geodis", Value: "GEODIS"}
)

// notificationCouriers is scanned in declaration order.
var notificationCouriers = []NotificationCourier{
	NotificationInPost, NotificationPocztaPolska, NotificationPallex, NotificationAllegroShipping,
	NotificationDPD, NotificationUPS, NotificationDHL, NotificationGLS,
	NotificationFedEx, NotificationCourierManager, NotificationHellmann, NotificationRaben,
	NotificationCourierCenter, NotificationRhenus, NotificationWeDo, NotificationDHLParcel,
	NotificationTNT, NotificationGeis, NotificationLog4World, NotificationRohligSUUS,
	NotificationPackageez, NotificationZadbano, NotificationMeest, NotificationKuehneNagel,
	NotificationOrlenPaczka, NotificationGeodis,
}

// NotificationCouriers returns the notification service vocabulary.
func NotificationCouriers() []NotificationCourier {
	out := make([]NotificationCourier, len(notificationCouriers))
	copy(out, notificationCouriers)
	return out
}
