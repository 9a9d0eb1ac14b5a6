// Package models defines the data exchanged with the recipe backend: the
// response envelope, user profiles, recipes and meal plans.
//
// The backend is not consistent about identifiers. Documents may carry
// "_id" or "id", and favorite lists may hold bare ids or embedded recipe
// documents. Decoding normalises all of this at the boundary, so the rest
// of the client only ever sees a single string id per entity.
package models
