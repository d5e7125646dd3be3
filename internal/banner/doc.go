// Package banner lays out the decorative comment lines that bracket
// generated C++ classes and composes them with class declaration and
// definition skeletons.
//
// A banner line is a fixed-width comment that repeats a label as many times
// as fits, each copy closed by '#', with the leftover width spread as
// padding from the centre of the line outwards:
//
//	//#        Widget        #        Widget        #        Widget        #
//
// Everything here is a pure function of its inputs.
package banner
