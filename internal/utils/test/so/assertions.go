package so

import (
	"github.com/smartystreets/assertions"
)

// set of assertions used across the test suites
var (
	// ShouldEqual typecasts assertions equivalent
	ShouldEqual = assertions.ShouldEqual
	// ShouldResemble typecasts assertions equivalent
	ShouldResemble = assertions.ShouldResemble
	// ShouldBeNil typecasts assertions equivalent
	ShouldBeNil = assertions.ShouldBeNil
	// ShouldNotBeNil typecasts assertions equivalent
	ShouldNotBeNil = assertions.ShouldNotBeNil
	// ShouldBeTrue typecasts assertions equivalent
	ShouldBeTrue = assertions.ShouldBeTrue
	// ShouldBeFalse typecasts assertions equivalent
	ShouldBeFalse = assertions.ShouldBeFalse
	// ShouldBeBlank typecasts assertions equivalent
	ShouldBeBlank = assertions.ShouldBeBlank
	// ShouldContainSubstring typecasts assertions equivalent
	ShouldContainSubstring = assertions.ShouldContainSubstring
	// ShouldBeError typecasts assertions equivalent
	ShouldBeError = assertions.ShouldBeError
)
