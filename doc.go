// Provides utilities for vector annotations drawn over raster images.
//
// The geometry lives in the coords package: conversion between pixel
// coordinates and the resolution independent 1000 unit space annotations
// are stored in, rectangle detection, rotation extraction from a view
// transform and IIIF region strings.
// Annotation shapes and their styles are described in shape, written as SVG
// by svgexport, and navthumb computes the viewbox indicator of a thumbnail.
//
// This package only holds the logger shared by the sub-packages.
package xrxsvg
