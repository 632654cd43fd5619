package property

import (
	"context"

	"github.com/roach88/falsify/arbitrary"
)

// ForAll1 through ForAll9 build properties over one to nine independent
// generators with a predicate of matching arity. Arguments are unpacked
// positionally, so each predicate parameter keeps its declared type. All
// of them delegate to New; none infer arity at runtime.
//
// The ForAllNCtx variants take context-aware predicates for work that
// blocks inside the predicate (I/O, subprocesses, timeouts). Generation
// itself never blocks in either form.

func ForAll1[A any](ga arbitrary.Arbitrary[A], pred func(A) bool) Property {
	return ForAll1Ctx(ga, func(_ context.Context, a A) bool { return pred(a) })
}

func ForAll2[A, B any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], pred func(A, B) bool) Property {
	return ForAll2Ctx(ga, gb, func(_ context.Context, a A, b B) bool { return pred(a, b) })
}

func ForAll3[A, B, C any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], pred func(A, B, C) bool) Property {
	return ForAll3Ctx(ga, gb, gc, func(_ context.Context, a A, b B, c C) bool { return pred(a, b, c) })
}

func ForAll4[A, B, C, D any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], pred func(A, B, C, D) bool) Property {
	return ForAll4Ctx(ga, gb, gc, gd, func(_ context.Context, a A, b B, c C, d D) bool { return pred(a, b, c, d) })
}

func ForAll5[A, B, C, D, E any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], pred func(A, B, C, D, E) bool) Property {
	return ForAll5Ctx(ga, gb, gc, gd, ge, func(_ context.Context, a A, b B, c C, d D, e E) bool { return pred(a, b, c, d, e) })
}

func ForAll6[A, B, C, D, E, F any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], pred func(A, B, C, D, E, F) bool) Property {
	return ForAll6Ctx(ga, gb, gc, gd, ge, gf, func(_ context.Context, a A, b B, c C, d D, e E, f F) bool { return pred(a, b, c, d, e, f) })
}

func ForAll7[A, B, C, D, E, F, G any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], pred func(A, B, C, D, E, F, G) bool) Property {
	return ForAll7Ctx(ga, gb, gc, gd, ge, gf, gg, func(_ context.Context, a A, b B, c C, d D, e E, f F, g G) bool { return pred(a, b, c, d, e, f, g) })
}

func ForAll8[A, B, C, D, E, F, G, H any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], gh arbitrary.Arbitrary[H], pred func(A, B, C, D, E, F, G, H) bool) Property {
	return ForAll8Ctx(ga, gb, gc, gd, ge, gf, gg, gh, func(_ context.Context, a A, b B, c C, d D, e E, f F, g G, h H) bool { return pred(a, b, c, d, e, f, g, h) })
}

func ForAll9[A, B, C, D, E, F, G, H, I any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], gh arbitrary.Arbitrary[H], gi arbitrary.Arbitrary[I], pred func(A, B, C, D, E, F, G, H, I) bool) Property {
	return ForAll9Ctx(ga, gb, gc, gd, ge, gf, gg, gh, gi, func(_ context.Context, a A, b B, c C, d D, e E, f F, g G, h H, i I) bool {
		return pred(a, b, c, d, e, f, g, h, i)
	})
}

func ForAll1Ctx[A any](ga arbitrary.Arbitrary[A], pred func(context.Context, A) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A))
		},
	)
}

func ForAll2Ctx[A, B any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], pred func(context.Context, A, B) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B))
		},
	)
}

func ForAll3Ctx[A, B, C any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], pred func(context.Context, A, B, C) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C))
		},
	)
}

func ForAll4Ctx[A, B, C, D any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], pred func(context.Context, A, B, C, D) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D))
		},
	)
}

func ForAll5Ctx[A, B, C, D, E any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], pred func(context.Context, A, B, C, D, E) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd), arbitrary.Erase(ge)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D), args[4].(E))
		},
	)
}

func ForAll6Ctx[A, B, C, D, E, F any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], pred func(context.Context, A, B, C, D, E, F) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd), arbitrary.Erase(ge), arbitrary.Erase(gf)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D), args[4].(E), args[5].(F))
		},
	)
}

func ForAll7Ctx[A, B, C, D, E, F, G any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], pred func(context.Context, A, B, C, D, E, F, G) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd), arbitrary.Erase(ge), arbitrary.Erase(gf), arbitrary.Erase(gg)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D), args[4].(E), args[5].(F), args[6].(G))
		},
	)
}

func ForAll8Ctx[A, B, C, D, E, F, G, H any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], gh arbitrary.Arbitrary[H], pred func(context.Context, A, B, C, D, E, F, G, H) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd), arbitrary.Erase(ge), arbitrary.Erase(gf), arbitrary.Erase(gg), arbitrary.Erase(gh)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D), args[4].(E), args[5].(F), args[6].(G), args[7].(H))
		},
	)
}

func ForAll9Ctx[A, B, C, D, E, F, G, H, I any](ga arbitrary.Arbitrary[A], gb arbitrary.Arbitrary[B], gc arbitrary.Arbitrary[C], gd arbitrary.Arbitrary[D], ge arbitrary.Arbitrary[E], gf arbitrary.Arbitrary[F], gg arbitrary.Arbitrary[G], gh arbitrary.Arbitrary[H], gi arbitrary.Arbitrary[I], pred func(context.Context, A, B, C, D, E, F, G, H, I) bool) Property {
	return New(
		[]arbitrary.Untyped{arbitrary.Erase(ga), arbitrary.Erase(gb), arbitrary.Erase(gc), arbitrary.Erase(gd), arbitrary.Erase(ge), arbitrary.Erase(gf), arbitrary.Erase(gg), arbitrary.Erase(gh), arbitrary.Erase(gi)},
		func(ctx context.Context, args []any) bool {
			return pred(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D), args[4].(E), args[5].(F), args[6].(G), args[7].(H), args[8].(I))
		},
	)
}
