package logger

const GameStartedMsg = "physics started, arena %vx%v"
const GoalScoredMsg = "goal scored, score %d : %d"

const MatchCreatedMsg = "match %s created"
const MatchEndedMsg = "match %s ended, final score %s"

const ConfigLoadedMsg = "config loaded: arena %vx%v, physics tick %v, frame tick %v"
const ConfigDefaultMsg = "no %s properties found in %s, using defaults"

const KeyBoundMsg = "key %q bound to %s"
const ScreenInitFailedMsg = "terminal screen init failed: %v"
