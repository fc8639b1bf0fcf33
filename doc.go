/*
Package option implements containers holding zero or one values, so "value
may be absent" lives in the type system instead of in nil checks and
sentinel values.

Three container shapes cover the three ownership cases: Option[T] owns its
payload, Ref[T] borrows an externally owned one, and Flag carries bare
presence with no payload at all.

Simple example:

	var port option.Option[int]
	port.Set(6881)
	doubled := option.Map(port, func(p int) int { return p * 2 })
	log.Print(doubled.UnwrapOr(0))

Type-changing combinators (Map, AndThen, Zip, ...) are package functions
because Go methods can't introduce type parameters; everything that stays
within one held type is a method.
*/
package option
