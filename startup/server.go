package startup

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// MemberBuilder defers the creation of a group member so that every
// creation failure is reported the same way.
type MemberBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
}

func Member(name string, createFunc func() (ifrit.Runner, error)) MemberBuilder {
	return MemberBuilder{Name: name, CreateFunc: createFunc}
}

// Runner wraps an already built runner.
func Runner(name string, runner ifrit.Runner) MemberBuilder {
	return Member(name, func() (ifrit.Runner, error) { return runner, nil })
}

func CreateMembers(builders []MemberBuilder, logger lager.Logger) grouper.Members {
	members := make(grouper.Members, 0, len(builders))
	for _, builder := range builders {
		runner, err := builder.CreateFunc()
		ExitOnError(err, logger, fmt.Sprintf("failed to create %s", builder.Name))
		members = append(members, grouper.Member{Name: builder.Name, Runner: runner})
	}
	return members
}

func StartService(logger lager.Logger, builders ...MemberBuilder) {
	err := StartServices(logger, CreateMembers(builders, logger))
	ExitOnError(err, logger, "service-exited-with-failure")
}
