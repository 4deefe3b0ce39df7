package cultivation

// EffectiveAttributes returns base attributes plus the equipment bonus
// accumulators. Pure read, no mutation.
func (p *PlayerProfile) EffectiveAttributes() AttributeSet {
	return AttributeSet{
		Attack:  p.Attack + p.AttackBonus,
		Defense: p.Defense + p.DefenseBonus,
		Health:  p.Health + p.HealthBonus,
		Mana:    p.Mana + p.ManaBonus,
		Speed:   p.Speed + p.SpeedBonus,
	}
}

// AddBonus applies an equipped item's stats to the accumulators. Must be
// paired 1:1 with RemoveBonus per item instance; when pairing discipline is
// in doubt, use RecomputeBonuses instead.
func (p *PlayerProfile) AddBonus(b EquipmentBonus) {
	p.AttackBonus += b.AttackBonus
	p.DefenseBonus += b.DefenseBonus
	p.HealthBonus += b.HealthBonus
	p.ManaBonus += b.ManaBonus
	p.SpeedBonus += b.SpeedBonus
}

// RemoveBonus reverses a prior AddBonus for the same item instance.
func (p *PlayerProfile) RemoveBonus(b EquipmentBonus) {
	p.AttackBonus -= b.AttackBonus
	p.DefenseBonus -= b.DefenseBonus
	p.HealthBonus -= b.HealthBonus
	p.ManaBonus -= b.ManaBonus
	p.SpeedBonus -= b.SpeedBonus
}

// RecomputeBonuses resets the accumulators and re-sums them from the full
// equipped-item set. Authoritative and idempotent: this is the recovery path
// for any suspected drift in the incremental add/remove bookkeeping.
func (p *PlayerProfile) RecomputeBonuses(equipped []EquipmentBonus) {
	p.AttackBonus = 0
	p.DefenseBonus = 0
	p.HealthBonus = 0
	p.ManaBonus = 0
	p.SpeedBonus = 0
	for _, b := range equipped {
		p.AddBonus(b)
	}
}
