package cultivation

// Realm tiers in ascending order. A player's realm is derived from level
// alone: the realm with the largest threshold <= level.
var realmTiers = []struct {
	Threshold int
	Name      string
	Bonus     float64
}{
	{1, "练气期", 0},
	{101, "筑基期", 0.5},
	{201, "金丹期", 1},
	{401, "元婴期", 2},
	{701, "化神期", 4},
	{1001, "合体期", 8},
	{1501, "大乘期", 16},
	{2001, "渡劫期", 32},
}

func RealmForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	name := realmTiers[0].Name
	for _, tier := range realmTiers {
		if level >= tier.Threshold {
			name = tier.Name
		}
	}
	return name
}

// RealmBonus returns the accrual multiplier bonus for a realm name.
// Unknown names yield 0.
func RealmBonus(realm string) float64 {
	for _, tier := range realmTiers {
		if tier.Name == realm {
			return tier.Bonus
		}
	}
	return 0
}

// RealmNames lists the tier names in ascending order.
func RealmNames() []string {
	out := make([]string, 0, len(realmTiers))
	for _, tier := range realmTiers {
		out = append(out, tier.Name)
	}
	return out
}
