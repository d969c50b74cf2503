// Package model implements the attribute-driven mapping between raw key/value
// payloads (decoded JSON) and typed SDK models.
//
// Every model type is described once by a static Descriptor: an ordered list
// of fields, each with an internal identifier, a wire key and a Type. The
// Mapper uses those tables to hydrate records from payloads, dehydrate them
// back into wire-keyed maps, and construct records from caller input that may
// use either spelling of a field. Polymorphic bases declare a Family that maps
// discriminator values to concrete models.
//
//	reg := model.NewRegistry()
//	_ = reg.Register(&model.Descriptor{
//		Name: "InputPort",
//		Fields: []model.Field{
//			{ID: "key", Key: "key", Type: model.PrimitiveType(model.String)},
//		},
//	})
//	m := model.NewMapper(reg)
//	rec, _ := m.Hydrate("InputPort", map[string]any{"key": "a"})
//	out := m.Dehydrate(rec) // map[string]any{"key": "a"}
package model
