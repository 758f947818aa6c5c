package systems

import (
	"math"

	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/physics"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// gapCheckDist is how far ahead a bot looks for a pit edge.
	gapCheckDist  = 1.0
	waypointReach = 0.5
)

type playerInfo struct {
	name     string
	index    int
	position mathutil.Vec3
	health   float64
	alive    bool
}

// UpdateBots generates input for bot-controlled players based on AI decisions.
// Must run BEFORE UpdateInput so the generated intent is applied this tick.
func UpdateBots(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	// Collect all player positions for target selection
	var players []playerInfo
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		players = append(players, playerInfo{
			name:     actor.Name,
			index:    actor.Index,
			position: actor.Transform.Position,
			health:   actor.Health.CurrentHealth(),
			alive:    actor.Alive,
		})
	})

	tags.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBotAI(arena, entry, players)
	})
}

func updateBotAI(arena *components.ArenaData, entry *donburi.Entry, players []playerInfo) {
	bot := components.Bot.Get(entry)
	actor := components.Actor.Get(entry)
	input := components.Input.Get(entry)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	if !actor.Alive {
		*input = components.InputData{}
		bot.State = components.BotIdle
		return
	}

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer -= arena.DT
	}

	me := actor.Transform.Position
	target := findNearestTarget(actor.Index, me, players)
	if target != nil {
		bot.Target = target.name
		bot.Distance = me.Distance(target.position)
	} else {
		bot.Target = ""
		bot.Distance = math.Inf(1)
	}

	// State machine with reaction delay
	if bot.DecisionTimer <= 0 {
		updateBotState(arena, bot, tuning, target, actor.Health.Fraction(), me)
		bot.DecisionTimer = tuning.ReactionDelay
	}

	generateBotInputs(arena, bot, tuning, input, actor, target)
}

func findNearestTarget(myIndex int, me mathutil.Vec3, players []playerInfo) *playerInfo {
	var nearest *playerInfo
	nearestDist := math.MaxFloat64

	for i := range players {
		p := &players[i]
		if p.index == myIndex || !p.alive {
			continue
		}
		if d := me.Distance(p.position); d < nearestDist {
			nearestDist = d
			nearest = p
		}
	}
	return nearest
}

func updateBotState(arena *components.ArenaData, bot *components.BotData, tuning cfg.BotDifficultyConfig, target *playerInfo, healthFraction float64, me mathutil.Vec3) {
	switch {
	case target == nil || bot.Distance > tuning.ChaseRange:
		if bot.State != components.BotWander {
			bot.Wander = wanderPoint(arena, me)
		}
		bot.State = components.BotWander
	case healthFraction < tuning.RetreatThreshold:
		bot.State = components.BotRetreat
	case bot.Distance < tuning.AttackRange && hasLineOfSight(arena.Space, me, target.position):
		bot.State = components.BotAttack
	default:
		bot.State = components.BotChase
	}

	bot.Path = nil
	if bot.State == components.BotChase && arena.Nav != nil && !hasLineOfSight(arena.Space, me, target.position) {
		bot.Path = arena.Nav.FindPath(me, target.position)
	}
}

func generateBotInputs(arena *components.ArenaData, bot *components.BotData, tuning cfg.BotDifficultyConfig, input *components.InputData, actor *components.ActorData, target *playerInfo) {
	me := actor.Transform.Position
	input.Move = mathutil.Zero
	if target == nil && bot.State != components.BotWander {
		// Target died since the last decision
		bot.State = components.BotIdle
	}

	switch bot.State {
	case components.BotChase:
		input.Move = followPath(bot, me, target.position)
	case components.BotAttack:
		// Keep closing in; the attack fires along the current facing.
		to := target.position.Sub(me).Flat()
		if to.Length() > tuning.AttackRange*0.5 {
			input.Move = to.Normalized()
		} else {
			actor.Transform.Forward = to.Normalized()
		}
		if arena.Rand.Float64() < tuning.AttackChance*arena.DT/math.Max(tuning.ReactionDelay, arena.DT) {
			input.Attack = true
		}
	case components.BotRetreat:
		input.Move = me.Sub(target.position).FlatNormalized()
	case components.BotWander:
		to := bot.Wander.Sub(me).Flat()
		if to.Length() < 0.5 {
			bot.Wander = wanderPoint(arena, me)
			to = bot.Wander.Sub(me).Flat()
		}
		input.Move = to.Normalized()
	}

	if input.Move.IsZero() {
		return
	}

	// Jump over pits rather than walk into them
	if gapAhead(arena.Space, me, input.Move) {
		input.Jump = true
	} else if arena.Rand.Float64() < tuning.JumpChance*arena.DT {
		input.Jump = true
	}
}

// followPath steers along the cached route, dropping waypoints once reached,
// and heads straight for goal when no route is left.
func followPath(bot *components.BotData, me, goal mathutil.Vec3) mathutil.Vec3 {
	for len(bot.Path) > 0 && bot.Path[0].Sub(me).Flat().Length() < waypointReach {
		bot.Path = bot.Path[1:]
	}
	if len(bot.Path) > 0 {
		goal = bot.Path[0]
	}
	return goal.Sub(me).FlatNormalized()
}

// wanderPoint picks a random point with floor under it near the bot.
func wanderPoint(arena *components.ArenaData, me mathutil.Vec3) mathutil.Vec3 {
	r := cfg.Bot.WanderRadius
	for i := 0; i < 8; i++ {
		p := mathutil.NewVec3(
			mathutil.ClampFloat(me.X+(arena.Rand.Float64()*2-1)*r, 0, arena.Space.Width),
			0,
			mathutil.ClampFloat(me.Z+(arena.Rand.Float64()*2-1)*r, 0, arena.Space.Depth),
		)
		if arena.Space.HasFloor(p) && !arena.Space.PointIn(p, tags.ResolvDeathZone) {
			return p
		}
	}
	return me
}

// gapAhead checks if there's a pit just in front of the bot.
func gapAhead(space *physics.Space, me, dir mathutil.Vec3) bool {
	if space == nil {
		return false
	}
	ahead := me.Add(dir.FlatNormalized().Scale(gapCheckDist))
	ahead.Y = 0
	return space.HasFloor(me.Add(mathutil.NewVec3(0, -me.Y, 0))) && !space.HasFloor(ahead)
}

// hasLineOfSight reports whether no wall stands between two points.
func hasLineOfSight(space *physics.Space, from, to mathutil.Vec3) bool {
	d := to.Sub(from).Flat()
	hit, ok := space.Raycast(from, d, d.Length(), tags.ResolvSolid)
	return !ok || hit.Distance >= d.Length()
}
