package texture

import (
	"fmt"
	"strings"
)

// BinaryOffsetAssets is the runtime base every generated texture
// offset is added to.
const BinaryOffsetAssets = "BINARY_OFFSET_ASSETS"

// GenerateHeader emits textures.generated.hpp: `enum class Texture :
// uint32_t { ... }` plus `extern const TextureEntry textures[]`.
// textures must already be sorted by name (Pipeline.Build guarantees
// this) so the enum and table are deterministic across builds.
func GenerateHeader(textures []*Texture) string {
	var b strings.Builder
	b.WriteString("// Code generated by the texture pipeline. DO NOT EDIT.\n")
	b.WriteString("#pragma once\n\n")
	b.WriteString("#include <cstdint>\n\n")
	b.WriteString("namespace Gfx {\n\n")

	b.WriteString("enum class Texture : uint32_t {\n")
	for _, t := range textures {
		fmt.Fprintf(&b, "\t%s,\n", t.Name)
	}
	b.WriteString("\tTEXTURE_COUNT,\n")
	b.WriteString("};\n\n")

	b.WriteString("struct TextureEntry {\n")
	b.WriteString("\tconst char* name;\n")
	b.WriteString("\tbool atlasTexture;\n")
	b.WriteString("\tuint32_t width;\n")
	b.WriteString("\tuint32_t height;\n")
	b.WriteString("\tuint16_t levels;\n")
	b.WriteString("\tuint64_t offset;\n")
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "extern const TextureEntry textures[static_cast<size_t>(Texture::TEXTURE_COUNT)];\n\n")
	b.WriteString("} // namespace Gfx\n")
	return b.String()
}

// GenerateSource emits textures.generated.cpp: the literal initializer
// table, with each offset written as `BINARY_OFFSET_ASSETS + offset`.
func GenerateSource(textures []*Texture) string {
	var b strings.Builder
	b.WriteString("// Code generated by the texture pipeline. DO NOT EDIT.\n")
	b.WriteString("#include \"textures.generated.hpp\"\n\n")
	b.WriteString("namespace Gfx {\n\n")
	b.WriteString("const TextureEntry textures[static_cast<size_t>(Texture::TEXTURE_COUNT)] = {\n")
	for _, t := range textures {
		fmt.Fprintf(&b, "\t{ \"%s\", %s, %d, %d, %d, %s + %d },\n",
			t.Name, boolLit(t.AtlasTexture), t.Width, t.Height, t.Levels, BinaryOffsetAssets, t.Offset)
	}
	b.WriteString("};\n\n")
	b.WriteString("} // namespace Gfx\n")
	return b.String()
}

func boolLit(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
