package postgres

import (
	errs "Arcadia/errors"
	"database/sql/driver"
	"fmt"
	"strings"
)

/*
 * Closed value sets stored as their string value. Every type refuses
 * out-of-set values both when validated and when written to the database.
 */

type Role string

const (
	RolePlayer    Role = "PLAYER"
	RoleDeveloper Role = "DEVELOPER"
)

type GameState string

const (
	GameStateBeta     GameState = "BETA"
	GameStateLaunched GameState = "LAUNCHED"
	GameStateRetired  GameState = "RETIRED"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "CARD"
	PaymentPaypal PaymentMethod = "PAYPAL"
	PaymentCredit PaymentMethod = "CREDIT"
	PaymentCrypto PaymentMethod = "CRYPTO"
)

type EventType string

const (
	EventRelease    EventType = "RELEASE"
	EventTournament EventType = "TOURNAMENT"
	EventSale       EventType = "SALE"
)

type Platform string

const (
	PlatformWindows Platform = "WINDOWS"
	PlatformLinux   Platform = "LINUX"
	PlatformMac     Platform = "MAC"
	PlatformAndroid Platform = "ANDROID"
	PlatformIOS     Platform = "IOS"
)

// Menu order. Index lookups are 1-based, like the options shown to an operator.
var (
	Roles          = []Role{RolePlayer, RoleDeveloper}
	GameStates     = []GameState{GameStateBeta, GameStateLaunched, GameStateRetired}
	PaymentMethods = []PaymentMethod{PaymentCard, PaymentPaypal, PaymentCredit, PaymentCrypto}
	EventTypes     = []EventType{EventRelease, EventTournament, EventSale}
	Platforms      = []Platform{PlatformWindows, PlatformLinux, PlatformMac, PlatformAndroid, PlatformIOS}
)

func (r Role) Valid() bool          { return contains(Roles, r) }
func (s GameState) Valid() bool     { return contains(GameStates, s) }
func (m PaymentMethod) Valid() bool { return contains(PaymentMethods, m) }
func (t EventType) Valid() bool     { return contains(EventTypes, t) }
func (p Platform) Valid() bool      { return contains(Platforms, p) }

func (r Role) String() string          { return string(r) }
func (s GameState) String() string     { return string(s) }
func (m PaymentMethod) String() string { return string(m) }
func (t EventType) String() string     { return string(t) }
func (p Platform) String() string      { return string(p) }

func (r Role) Value() (driver.Value, error)          { return enumValue("role", r) }
func (s GameState) Value() (driver.Value, error)     { return enumValue("state", s) }
func (m PaymentMethod) Value() (driver.Value, error) { return enumValue("payment_method", m) }
func (t EventType) Value() (driver.Value, error)     { return enumValue("event_type", t) }
func (p Platform) Value() (driver.Value, error)      { return enumValue("platform", p) }

func (r *Role) Scan(src any) error          { return scanEnum(src, r) }
func (s *GameState) Scan(src any) error     { return scanEnum(src, s) }
func (m *PaymentMethod) Scan(src any) error { return scanEnum(src, m) }
func (t *EventType) Scan(src any) error     { return scanEnum(src, t) }
func (p *Platform) Scan(src any) error      { return scanEnum(src, p) }

func RoleByIndex(i int) (Role, error)                   { return byIndex("role", Roles, i) }
func GameStateByIndex(i int) (GameState, error)         { return byIndex("state", GameStates, i) }
func PaymentMethodByIndex(i int) (PaymentMethod, error) { return byIndex("payment_method", PaymentMethods, i) }
func EventTypeByIndex(i int) (EventType, error)         { return byIndex("event_type", EventTypes, i) }
func PlatformByIndex(i int) (Platform, error)           { return byIndex("platform", Platforms, i) }

// ParsePaymentMethod accepts the enum name in any letter case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errs.Validation("payment_method", "%q is not one of %v", s, PaymentMethods)
	}
	return m, nil
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", errs.Validation("role", "%q is not one of %v", s, Roles)
	}
	return r, nil
}

type enum interface {
	~string
	Valid() bool
}

func contains[T comparable](set []T, v T) bool {
	for _, candidate := range set {
		if candidate == v {
			return true
		}
	}
	return false
}

func byIndex[T enum](field string, set []T, i int) (T, error) {
	if i < 1 || i > len(set) {
		var zero T
		return zero, errs.Validation(field, "option %d out of range 1..%d", i, len(set))
	}
	return set[i-1], nil
}

func enumValue[T enum](field string, v T) (driver.Value, error) {
	if !v.Valid() {
		return nil, errs.Validation(field, "%q is not an allowed value", string(v))
	}
	return string(v), nil
}

func scanEnum[T enum](src any, dst *T) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*dst = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
	value := T(raw)
	if !value.Valid() {
		return errs.Validation(fmt.Sprintf("%T", value), "stored value %q is not allowed", raw)
	}
	*dst = value
	return nil
}
