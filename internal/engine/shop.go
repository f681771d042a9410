package engine

// ShopItem identifies a purchasable upgrade.
type ShopItem string

const (
	ShopShield ShopItem = "shield"
	ShopLife   ShopItem = "life"
)

// Shop prices, in session money.
const (
	ShieldCost = 100
	LifeCost   = 250
)

// Buy spends session money on an upgrade. The purchase silently fails
// when the shop is not open, money is short, or a life purchase would
// exceed the cap. Returns whether the purchase went through.
func (e *Engine) Buy(item ShopItem) bool {
	if e.state != StateShop {
		return false
	}
	switch item {
	case ShopShield:
		if e.session.Money < ShieldCost {
			return false
		}
		e.session.Money -= ShieldCost
		e.session.Shields++
		return true
	case ShopLife:
		if e.session.Money < LifeCost || e.session.Lives >= MaxLives {
			return false
		}
		e.session.Money -= LifeCost
		e.session.Lives++
		return true
	}
	return false
}
