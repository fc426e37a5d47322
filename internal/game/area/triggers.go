package area

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
)

// checkTriggersIntersection fires triggers the object has just entered.
// A trigger linked to another module schedules the transition and stops
// the check.
func (a *Area) checkTriggersIntersection(triggerer object.Object) {
	pos := triggerer.Position().XY()
	const maxDist2 = DefaultRaycastDistance * DefaultRaycastDistance

	for _, obj := range a.objectsByType[object.TypeTrigger] {
		t := obj.(*object.Trigger)
		if t.DistanceTo2D2(pos) > maxDist2 {
			continue
		}
		if t.IsTenant(triggerer.ID()) || !t.Contains(pos) {
			continue
		}
		logger.Debug("trigger entered",
			zap.String("trigger", t.Tag()),
			zap.String("triggerer", triggerer.Tag()))
		t.AddTenant(triggerer.ID())

		if t.IsLinkedToModule() {
			logger.Info("module transition",
				zap.String("module", t.LinkedToModule),
				zap.String("entry", t.LinkedTo),
				zap.String("destination", t.TransitionDestin))
			if a.services.Transitioner != nil {
				a.services.Transitioner.ScheduleModuleTransition(t.LinkedToModule, t.LinkedTo)
			} else {
				logger.Warn("module transition without transitioner",
					zap.String("module", t.LinkedToModule))
			}
			return
		}
		if name := t.Script(object.EventEnter); name != "" {
			a.runScript(name, t.ID(), triggerer.ID())
		}
	}
}

// updateTriggerTenants drops tenants that left the polygon or no longer
// exist and runs the exit script for each.
func (a *Area) updateTriggerTenants(t *object.Trigger) {
	for _, id := range t.Tenants() {
		tenant := a.objectsByID[id]
		if tenant != nil && t.Contains(tenant.Position().XY()) {
			continue
		}
		t.RemoveTenant(id)
		logger.Debug("trigger exited", zap.String("trigger", t.Tag()), zap.Uint32("id", id))
		if name := t.Script(object.EventExit); name != "" {
			a.runScript(name, t.ID(), id)
		}
	}
}
