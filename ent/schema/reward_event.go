package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records every star credit or debit against the ledger.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			NotEmpty().
			Comment("session, time_attack, memory, quest, purchase or water"),
		field.Int("amount").
			Comment("Signed star delta; negative for purchases and watering"),
		field.Int("balance").
			Comment("Star balance after applying the delta"),
		field.String("detail").
			Optional().
			Comment("Free-form context, e.g. the purchased avatar id"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
