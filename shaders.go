package main

// Shader source for the full-screen path-tracing pass. The vertex stage just forwards NDC
// corners; all the work happens in the fragment stage, which ray-marches against the seven
// buffer textures described in the GPU layout packer.
const (
	quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 uv;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    uv = aUV;
}
` + "\x00"

	// octreeFragmentShaderSource samples the seven bindings as buffer textures
	// (samplerBuffer/isamplerBuffer + texelFetch) rather than shader storage buffers: this
	// program targets OpenGL 4.1 core, which predates GL_SHADER_STORAGE_BUFFER (4.3+). The
	// binding order and record layout match PackGPULayout exactly.
	octreeFragmentShaderSource = `
#version 410 core
in vec2 uv;
out vec4 fragColor;

uniform samplerBuffer sphereGeometry;   // binding 0: center.xyz, radius
uniform samplerBuffer sphereMaterialA;  // binding 1: material kind, albedo.rgb
uniform samplerBuffer sphereMaterialB;  // binding 2: fuzz, refractiveIndex, 0, 0
uniform samplerBuffer nodeBoundsA;      // binding 3: min.xyz, childrenOffset
uniform samplerBuffer nodeBoundsB;      // binding 4: max.xyz, objectsOffset
uniform isamplerBuffer nodeCounts;      // binding 5: objectCount
uniform isamplerBuffer objectIndices;   // binding 6: concatenated object indices

uniform mat4 view;
uniform mat4 projection;
uniform vec3 cameraPos;
uniform float cameraZoom;
uniform vec3 iResolution;

uniform int octreeNodeCount;
uniform int sphereCount;
uniform int numSamples;
uniform int maxDepth;
uniform bool useOctree;

struct HitRecord {
    float t;
    vec3 point;
    vec3 normal;
    bool frontFace;
    int sphereIndex;
};

// pcg hash, one stream per pixel per sample.
uint rngState;

uint pcg(uint v) {
    uint state = v * 747796405u + 2891336453u;
    uint word = ((state >> ((state >> 28u) + 4u)) ^ state) * 277803737u;
    return (word >> 22u) ^ word;
}

float randFloat() {
    rngState = pcg(rngState);
    return float(rngState) * (1.0 / 4294967296.0);
}

vec3 randomUnitVector() {
    float z = 1.0 - 2.0 * randFloat();
    float phi = 6.28318530718 * randFloat();
    float r = sqrt(max(0.0, 1.0 - z * z));
    return vec3(r * cos(phi), r * sin(phi), z);
}

vec3 randomInUnitSphere() {
    return randomUnitVector() * pow(randFloat(), 1.0 / 3.0);
}

bool hitSphere(int i, vec3 origin, vec3 dir, float tMin, float tMax, out HitRecord rec) {
    vec4 geom = texelFetch(sphereGeometry, i);
    vec3 center = geom.xyz;
    float radius = geom.w;

    vec3 oc = origin - center;
    float a = dot(dir, dir);
    float halfB = dot(oc, dir);
    float c = dot(oc, oc) - radius * radius;
    float discriminant = halfB * halfB - a * c;
    if (discriminant < 0.0) {
        return false;
    }

    float sqrtd = sqrt(discriminant);
    float root = (-halfB - sqrtd) / a;
    if (root < tMin || root > tMax) {
        root = (-halfB + sqrtd) / a;
        if (root < tMin || root > tMax) {
            return false;
        }
    }

    rec.t = root;
    rec.point = origin + root * dir;
    vec3 outward = (rec.point - center) / radius;
    rec.frontFace = dot(dir, outward) < 0.0;
    rec.normal = rec.frontFace ? outward : -outward;
    rec.sphereIndex = i;
    return true;
}

// traceBruteForce checks every sphere, ignoring the octree entirely (useOctree == false).
bool traceBruteForce(vec3 origin, vec3 dir, float tMin, float tMax, out HitRecord rec) {
    bool hitAnything = false;
    float closest = tMax;
    for (int i = 0; i < sphereCount; i++) {
        HitRecord candidate;
        if (hitSphere(i, origin, dir, tMin, closest, candidate)) {
            hitAnything = true;
            closest = candidate.t;
            rec = candidate;
        }
    }
    return hitAnything;
}

// traceOctree descends the linearized tree iteratively with an explicit stack: a leaf's
// objects_offset/object_count index directly into the object-index buffer, and an internal node
// pushes all eight children (children_offset + 0..7), each slab-tested when it is popped. When
// fewer than eight stack slots remain, an internal node's children are not pushed.
bool traceOctree(vec3 origin, vec3 dir, float tMin, float tMax, out HitRecord rec) {
    bool hitAnything = false;
    float closest = tMax;

    int stack[64];
    int stackPtr = 0;
    stack[stackPtr++] = 0; // root is always node 0 post-linearization

    while (stackPtr > 0) {
        int nodeIdx = stack[--stackPtr];

        vec4 boundsA = texelFetch(nodeBoundsA, nodeIdx);
        vec4 boundsB = texelFetch(nodeBoundsB, nodeIdx);
        vec3 bmin = boundsA.xyz;
        vec3 bmax = boundsB.xyz;

        // Slab test against this node's box; skip entirely if the ray misses it.
        vec3 invDir = 1.0 / dir;
        vec3 t0 = (bmin - origin) * invDir;
        vec3 t1 = (bmax - origin) * invDir;
        vec3 tsmaller = min(t0, t1);
        vec3 tbigger = max(t0, t1);
        float tNear = max(tMin, max(tsmaller.x, max(tsmaller.y, tsmaller.z)));
        float tFar = min(closest, min(tbigger.x, min(tbigger.y, tbigger.z)));
        if (tNear > tFar) {
            continue;
        }

        int childrenOffset = int(boundsA.w);
        if (childrenOffset == -1) {
            int objectsOffset = int(boundsB.w);
            int objectCount = texelFetch(nodeCounts, nodeIdx).r;
            for (int k = 0; k < objectCount; k++) {
                int sphereIdx = texelFetch(objectIndices, objectsOffset + k).r;
                HitRecord candidate;
                if (hitSphere(sphereIdx, origin, dir, tMin, closest, candidate)) {
                    hitAnything = true;
                    closest = candidate.t;
                    rec = candidate;
                }
            }
        } else if (stackPtr + 8 <= 64) {
            for (int k = 0; k < 8; k++) {
                stack[stackPtr++] = childrenOffset + k;
            }
        }
    }

    return hitAnything;
}

float schlick(float cosine, float refIdx) {
    float r0 = (1.0 - refIdx) / (1.0 + refIdx);
    r0 = r0 * r0;
    return r0 + (1.0 - r0) * pow(1.0 - cosine, 5.0);
}

// scatter bounces a ray off the hit sphere according to its material record. Returns false when
// the ray is absorbed (a fuzzy metal reflecting below the surface).
bool scatter(HitRecord rec, inout vec3 origin, inout vec3 dir, inout vec3 throughput) {
    vec4 matA = texelFetch(sphereMaterialA, rec.sphereIndex);
    vec4 matB = texelFetch(sphereMaterialB, rec.sphereIndex);
    int kind = int(matA.x);
    vec3 albedo = matA.yzw;
    float fuzz = matB.x;
    float refIdx = matB.y;

    origin = rec.point;

    if (kind == 1) { // metal
        vec3 reflected = reflect(normalize(dir), rec.normal);
        dir = reflected + fuzz * randomInUnitSphere();
        throughput *= albedo;
        return dot(dir, rec.normal) > 0.0;
    }

    if (kind == 2) { // dielectric
        float ratio = rec.frontFace ? (1.0 / refIdx) : refIdx;
        vec3 unitDir = normalize(dir);
        float cosTheta = min(dot(-unitDir, rec.normal), 1.0);
        float sinTheta = sqrt(1.0 - cosTheta * cosTheta);

        if (ratio * sinTheta > 1.0 || schlick(cosTheta, ratio) > randFloat()) {
            dir = reflect(unitDir, rec.normal);
        } else {
            dir = refract(unitDir, rec.normal, ratio);
        }
        return true;
    }

    // diffuse
    vec3 scatterDir = rec.normal + randomUnitVector();
    if (dot(scatterDir, scatterDir) < 1e-8) {
        scatterDir = rec.normal;
    }
    dir = scatterDir;
    throughput *= albedo;
    return true;
}

vec3 rayColor(vec3 origin, vec3 dir) {
    vec3 throughput = vec3(1.0);

    for (int bounce = 0; bounce < maxDepth; bounce++) {
        HitRecord rec;
        bool hit = useOctree
            ? traceOctree(origin, dir, 0.001, 1000.0, rec)
            : traceBruteForce(origin, dir, 0.001, 1000.0, rec);

        if (!hit) {
            float t = 0.5 * (normalize(dir).y + 1.0);
            vec3 sky = mix(vec3(1.0), vec3(0.5, 0.7, 1.0), t);
            return throughput * sky;
        }

        if (!scatter(rec, origin, dir, throughput)) {
            return vec3(0.0);
        }
    }

    return vec3(0.0);
}

void main() {
    rngState = uint(gl_FragCoord.x) + uint(gl_FragCoord.y) * uint(iResolution.x);

    vec3 color = vec3(0.0);
    for (int s = 0; s < numSamples; s++) {
        rngState = pcg(rngState + uint(s) * 9781u);
        vec2 jitter = vec2(randFloat(), randFloat()) / iResolution.xy;
        vec2 ndc = (uv + jitter) * 2.0 - 1.0;
        ndc.x *= iResolution.x / iResolution.y;

        vec3 dir = normalize(vec3(ndc / cameraZoom, -1.0));
        dir = transpose(mat3(view)) * dir;

        color += rayColor(cameraPos, dir);
    }

    color /= float(numSamples);
    color = sqrt(clamp(color, 0.0, 1.0)); // gamma 2.0

    fragColor = vec4(color, 1.0);
}
` + "\x00"
)
