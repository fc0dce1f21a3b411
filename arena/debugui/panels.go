package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/ecs"
)

// PerformancePanel shows frame times, storage statistics and per-system
// timings.
type PerformancePanel struct {
	sim     *arena.Simulation
	history *frameHistory
}

func NewPerformancePanel(sim *arena.Simulation, historyFrames int) *PerformancePanel {
	return &PerformancePanel{sim: sim, history: newFrameHistory(historyFrames)}
}

func (p *PerformancePanel) Render(dt float64) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.history.push(float32(dt * 1000))
	stats := p.sim.Storage().CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := p.history.average()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps(avg)))

	imgui.Separator()
	imgui.Text("Frame Time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.history.samples[0], int32(len(p.history.samples)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range p.sim.Scheduler().GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetypes") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%08X  %d  %s", arch.ID, arch.EntityCount, strings.Join(arch.ComponentTypes, ", ")))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// ArenaPanel shows the arena, held keys, the player's components and one
// row per enemy.
type ArenaPanel struct {
	sim     *arena.Simulation
	primary *ecs.Singleton[arena.Primary]
	enemies *ecs.Query[struct {
		ecs.EntityId
		*arena.Transform
		*arena.Wander
		*arena.Enemy
	}]
}

func NewArenaPanel(sim *arena.Simulation) *ArenaPanel {
	storage := sim.Storage()
	return &ArenaPanel{
		sim:     sim,
		primary: ecs.NewSingleton[arena.Primary](storage),
		enemies: ecs.NewQuery[struct {
			ecs.EntityId
			*arena.Transform
			*arena.Wander
			*arena.Enemy
		}](storage),
	}
}

// heldKeys names the held keys in declaration order.
func heldKeys(keys arena.KeyState) []string {
	var held []string
	for _, k := range arena.AllKeys() {
		if keys.Pressed(k) {
			held = append(held, k.String())
		}
	}
	return held
}

func (p *ArenaPanel) Render(dt float64) {
	if !imgui.BeginV("Arena", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cfg := p.sim.Config()
	a := p.sim.Arena()
	imgui.Text(fmt.Sprintf("Arena: %.0f x %.0f", a.Width, a.Height))
	imgui.Text(fmt.Sprintf("Frame: %d  dt: %.4f", p.sim.Frames(), dt))
	imgui.Text(fmt.Sprintf("Seed: %d  Motion: %s", p.sim.Seed(), cfg.Motion))
	imgui.Text("Held: " + strings.Join(heldKeys(p.sim.Keys()), " "))

	imgui.Separator()
	if imgui.TreeNodeStr("Player") {
		p.renderEntity(p.primary.Get().Player)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Enemies") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("EnemyTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("Position")
			imgui.TableSetupColumn("Direction")
			imgui.TableSetupColumn("Tween")
			imgui.TableHeadersRow()

			p.enemies.Execute()
			for enemy := range p.enemies.Values() {
				pos := enemy.Transform.Translation
				tween := &enemy.Wander.Tween

				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", enemy.EntityId))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.2f, %.2f", pos.X(), pos.Y()))
				imgui.TableNextColumn()
				imgui.Text(enemy.Wander.Direction.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.2f / %.2f s", tween.Elapsed(), tween.Duration()))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (p *ArenaPanel) renderEntity(ref *ecs.EntityRef) {
	storage := p.sim.Storage()
	id, ok := storage.ResolveEntityRef(ref)
	if !ok {
		imgui.Text("not spawned")
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", id))
	for _, compType := range ref.Archetype.Types() {
		lines := describe(storage.GetComponent(id, compType))
		if len(lines) == 0 {
			imgui.BulletText(compType.String())
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			for _, line := range lines {
				imgui.BulletText(line)
			}
			imgui.TreePop()
		}
	}
}
