package driver

import "fmt"

// Stage names one step of the pipeline.
type Stage string

const (
	StageTokenize  Stage = "tokenize"
	StageParse     Stage = "parse"
	StageLower     Stage = "lower"
	StageTransform Stage = "transform"
	StageRender    Stage = "render"
)

// Stages lists the pipeline in execution order.
var Stages = []Stage{StageTokenize, StageParse, StageLower, StageTransform, StageRender}

// ParseStage accepts a stage name. "cst" and "ast" are accepted as aliases
// for parse and transform, the stages that produce those trees.
func ParseStage(s string) (Stage, error) {
	switch s {
	case "cst":
		return StageParse, nil
	case "ast":
		return StageTransform, nil
	}
	for _, st := range Stages {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q (expected: tokenize|parse|cst|lower|transform|ast|render)", s)
}
