package effect

import "math"

func handlerMPGain(value int, ctx *Context) {
	p := ctx.Me()
	p.Mana += float64(value)
	if p.Mana > p.MaxMana {
		p.Mana = p.MaxMana
	}
	if p.Mana < 0 {
		p.Mana = 0
	}
}

func handlerHealHero(value int, ctx *Context) {
	p := ctx.Me()
	p.Life += value
	if p.Life > p.MaxLife {
		p.Life = p.MaxLife
	}
}

func handlerLifeSacrifice(value int, ctx *Context) {
	p := ctx.Me()
	p.Life -= value
	if p.Life < 0 {
		p.Life = 0
	}
}

func handlerHalveHeroLife(value int, ctx *Context) {
	p := ctx.Me()
	p.Life = p.Life / 2 // floor division
}

func handlerHalveMP(value int, ctx *Context) {
	p := ctx.Me()
	p.Mana = math.Ceil(p.Mana / 2)
}

func handlerArtCharge(value int, ctx *Context) {
	ctx.Me().CreditAbilityPoints(value)
}

func handlerDrawToEX(value int, ctx *Context) {
	p := ctx.Me()
	if len(p.Deck) == 0 {
		return
	}
	card := p.Deck[0]
	if !p.AppendEX(card) {
		return
	}
	p.Deck = p.Deck[1:]
}
