package tms5220

import "github.com/speechlab/tms5220/internal/tables"

func energyValue(index int) int { return tables.EnergyAt(index) }

func pitchValue(index int) int { return tables.PitchAt(index) }

func kValue(stage, index int) int { return tables.KAt(stage, index) }

func kTableLen(stage int) int { return len(tables.K[stage]) }

func tablesKWidth(stage int) int { return tables.KWidths[stage] }
